package domain

import "fmt"

// Preference is one (username, label) pair. The pair is unique; the full
// set for a user is replaced by the client via delete-then-readd.
type Preference struct {
	Username   string `json:"username,omitempty"`
	Preference string `json:"preference"`
}

// NewPreference validates and builds a preference pair
func NewPreference(username, label string) (*Preference, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if label == "" {
		return nil, fmt.Errorf("preference is required")
	}
	return &Preference{Username: username, Preference: label}, nil
}

// Follow records that follower_username follows followed_username
type Follow struct {
	FollowerUsername string `json:"follower_username"`
	FollowedUsername string `json:"followed_username"`
}

// NewFollow validates and builds a follow edge
func NewFollow(follower, followed string) (*Follow, error) {
	if follower == "" || followed == "" {
		return nil, fmt.Errorf("both follower and followed usernames are required")
	}
	if follower == followed {
		return nil, fmt.Errorf("cannot follow yourself")
	}
	return &Follow{FollowerUsername: follower, FollowedUsername: followed}, nil
}
