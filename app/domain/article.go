package domain

// Cluster id sentinel values marking an article that belongs to no
// topical group. Such articles never contribute to related-article lookups.
const (
	ClusterNone     = 0
	ClusterUnusable = -1
)

// Article is a news article row. Articles are read-only through this API;
// an importer pipeline owns the writes. JSON field names mirror the
// storage columns the mobile client already consumes.
type Article struct {
	ID               int64  `json:"id"`
	Link             string `json:"link"`
	Headline         string `json:"headline"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	Authors          string `json:"authors"`
	Date             string `json:"date"`
	ClusterID        int64  `json:"clusterID"`
}

// HasCluster reports whether the article belongs to a real topical cluster
func (a *Article) HasCluster() bool {
	return a.ClusterID != ClusterNone && a.ClusterID != ClusterUnusable
}
