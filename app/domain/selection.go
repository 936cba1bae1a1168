package domain

// SelectionKind identifies one of the "currently selected" slots a screen
// stashes before navigating and the next screen reads back.
type SelectionKind string

const (
	SelectionUsername  SelectionKind = "username"
	SelectionArticleID SelectionKind = "article_id"
	SelectionTweetLink SelectionKind = "tweet_link"
)

// DefaultClientID is the selection scope used when a caller sends no
// X-Client-ID header. Legacy clients all share this scope, which keeps the
// historical last-writer-wins behavior observable for them.
const DefaultClientID = "default"

// Selection is the value held in one slot for one client scope.
type Selection struct {
	Kind  SelectionKind `json:"kind"`
	Value string        `json:"value"`
}
