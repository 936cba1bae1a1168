package port

//go:generate mockgen -source=content_port.go -destination=../mocks/mock_content_port.go -package=mocks

import (
	"context"

	"chronicle-service/app/domain"
)

// ArticleUsecase defines article retrieval business logic
type ArticleUsecase interface {
	// GetArticles matches the category by substring. capped applies the
	// configured list limit; uncapped returns every match.
	GetArticles(ctx context.Context, category string, capped bool) ([]domain.Article, error)
	GetArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	// GetRelated returns the other members of the article's cluster.
	// Articles with a sentinel cluster id yield an empty result, not an error.
	GetRelated(ctx context.Context, id int64) ([]domain.Article, error)
}

// ArticleRepository defines article data access. Articles are read-only;
// writes belong to the import pipeline.
type ArticleRepository interface {
	// FetchByCategory matches category by substring. limit <= 0 means no cap.
	FetchByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	// FetchByCluster returns cluster members excluding the given article id.
	FetchByCluster(ctx context.Context, clusterID, excludeID int64, limit int) ([]domain.Article, error)
}

// TweetUsecase defines tweet retrieval business logic
type TweetUsecase interface {
	GetTweets(ctx context.Context, category string, capped bool) ([]domain.Tweet, error)
	GetTweetByLink(ctx context.Context, link string) (*domain.Tweet, error)
	// GetTrendingTweets returns tweets from the 2-day window anchored to the
	// newest data, ordered by favorite count descending.
	GetTrendingTweets(ctx context.Context) ([]domain.Tweet, error)
}

// TweetRepository defines tweet data access
type TweetRepository interface {
	FetchByCategory(ctx context.Context, category string, limit int) ([]domain.Tweet, error)
	GetByLink(ctx context.Context, link string) (*domain.Tweet, error)
	FetchTrending(ctx context.Context, limit int) ([]domain.Tweet, error)
}
