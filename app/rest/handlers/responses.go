package handlers

// StatusResponse is the envelope shape the mobile client binds against.
// The original backend used loosely varying bodies; the omitempty tags let
// one type reproduce every shape it actually sent.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Selection slot read responses. Each slot has its own top-level key; the
// client checks for the key's presence rather than a status field.
type UsernameResponse struct {
	Username string `json:"username"`
}

type ArticleIDResponse struct {
	ArticleID int64 `json:"articleId"`
}

type TweetLinkResponse struct {
	TweetLink string `json:"tweetLink"`
}

// FollowedUser is one element of the bare array /get_followed_users
// returns. The client reads item.username off each element.
type FollowedUser struct {
	Username string `json:"username"`
}

// Internal failures always surface this body; the cause is only logged.
const internalErrorMessage = "Internal server error"
