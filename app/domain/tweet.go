package domain

import "time"

// Tweet is a captured social post. Read-only through this API. The JSON
// field casing is inherited from the ingest pipeline's column names and is
// what the mobile client binds against.
type Tweet struct {
	Username    string    `json:"Username"`
	Text        string    `json:"Tweet"`
	CreatedAt   time.Time `json:"Created_At"`
	Retweets    int64     `json:"Retweets"`
	Favorites   int64     `json:"Favorites"`
	Link        string    `json:"Tweet_Link"`
	MediaURL    string    `json:"Media_URL"`
	Explanation string    `json:"Explanation"`
	Categories  string    `json:"categories"`
}
