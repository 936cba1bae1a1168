package usecase

import (
	"context"
	"log/slog"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// ArticleUseCase implements article retrieval business logic
type ArticleUseCase struct {
	articleRepo port.ArticleRepository
	listLimit   int
	logger      *slog.Logger
}

// NewArticleUseCase creates a new ArticleUseCase instance
func NewArticleUseCase(articleRepo port.ArticleRepository, listLimit int, logger *slog.Logger) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
		listLimit:   listLimit,
		logger:      logger.With("component", "article_usecase"),
	}
}

// GetArticles returns articles whose category contains the given string.
// capped applies the configured list limit; zero matches is a valid empty
// state, not an error.
func (uc *ArticleUseCase) GetArticles(ctx context.Context, category string, capped bool) ([]domain.Article, error) {
	limit := 0
	if capped {
		limit = uc.listLimit
	}
	return uc.articleRepo.FetchByCategory(ctx, category, limit)
}

// GetArticleByID returns one article or domain.ErrArticleNotFound
func (uc *ArticleUseCase) GetArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return uc.articleRepo.GetByID(ctx, id)
}

// GetRelated resolves the article's cluster and returns its other members.
// Sentinel cluster ids (0, -1) mean the article was never clustered; the
// result is then an empty set, not an error.
func (uc *ArticleUseCase) GetRelated(ctx context.Context, id int64) ([]domain.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !article.HasCluster() {
		uc.logger.Debug("article has no cluster", "id", id, "cluster_id", article.ClusterID)
		return []domain.Article{}, nil
	}

	return uc.articleRepo.FetchByCluster(ctx, article.ClusterID, article.ID, uc.listLimit)
}

// TweetUseCase implements tweet retrieval business logic
type TweetUseCase struct {
	tweetRepo     port.TweetRepository
	listLimit     int
	trendingLimit int
	logger        *slog.Logger
}

// NewTweetUseCase creates a new TweetUseCase instance
func NewTweetUseCase(tweetRepo port.TweetRepository, listLimit, trendingLimit int, logger *slog.Logger) *TweetUseCase {
	return &TweetUseCase{
		tweetRepo:     tweetRepo,
		listLimit:     listLimit,
		trendingLimit: trendingLimit,
		logger:        logger.With("component", "tweet_usecase"),
	}
}

// GetTweets returns tweets whose categories contain the given string
func (uc *TweetUseCase) GetTweets(ctx context.Context, category string, capped bool) ([]domain.Tweet, error) {
	limit := 0
	if capped {
		limit = uc.listLimit
	}
	return uc.tweetRepo.FetchByCategory(ctx, category, limit)
}

// GetTweetByLink returns one tweet or domain.ErrTweetNotFound
func (uc *TweetUseCase) GetTweetByLink(ctx context.Context, link string) (*domain.Tweet, error) {
	return uc.tweetRepo.GetByLink(ctx, link)
}

// GetTrendingTweets returns the most-favorited tweets from the 2-day
// window anchored to the newest row in the table. Anchoring to data
// recency keeps the result deterministic for a fixed dataset even when
// ingestion has paused.
func (uc *TweetUseCase) GetTrendingTweets(ctx context.Context) ([]domain.Tweet, error) {
	return uc.tweetRepo.FetchTrending(ctx, uc.trendingLimit)
}
