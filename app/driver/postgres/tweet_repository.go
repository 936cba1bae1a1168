package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// TweetRepository implements port.TweetRepository for PostgreSQL
type TweetRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTweetRepository creates a new PostgreSQL tweet repository
func NewTweetRepository(db DatabaseIface, logger *slog.Logger) port.TweetRepository {
	return &TweetRepository{
		db:     db,
		logger: logger.With("component", "tweet_repository"),
	}
}

const tweetColumns = `username, tweet, created_at, retweets, favorites, tweet_link, media_url, explanation, categories`

// FetchByCategory matches the categories column by substring.
// limit <= 0 means no cap.
func (r *TweetRepository) FetchByCategory(ctx context.Context, category string, limit int) ([]domain.Tweet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tweets
		WHERE categories LIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC`, tweetColumns)

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		query += ` LIMIT $2`
		rows, err = r.db.Query(ctx, query, category, limit)
	} else {
		rows, err = r.db.Query(ctx, query, category)
	}
	if err != nil {
		r.logger.Error("failed to fetch tweets", "category", category, "error", err)
		return nil, fmt.Errorf("failed to fetch tweets: %w", err)
	}
	defer rows.Close()

	return scanTweets(rows)
}

// GetByLink retrieves one tweet by its link identifier
func (r *TweetRepository) GetByLink(ctx context.Context, link string) (*domain.Tweet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tweets
		WHERE tweet_link = $1`, tweetColumns)

	tweet := &domain.Tweet{}
	err := r.db.QueryRow(ctx, query, link).Scan(
		&tweet.Username,
		&tweet.Text,
		&tweet.CreatedAt,
		&tweet.Retweets,
		&tweet.Favorites,
		&tweet.Link,
		&tweet.MediaURL,
		&tweet.Explanation,
		&tweet.Categories,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTweetNotFound
		}
		r.logger.Error("failed to get tweet", "link", link, "error", err)
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}

	return tweet, nil
}

// FetchTrending returns tweets from the 2-day window ending at the newest
// created_at date in the table, ordered by favorite count descending. The
// window anchors to data recency rather than wall-clock time, so results
// are replay-safe for a fixed dataset.
func (r *TweetRepository) FetchTrending(ctx context.Context, limit int) ([]domain.Tweet, error) {
	query := fmt.Sprintf(`
		WITH latest_date AS (
			SELECT MAX(created_at)::date AS max_date
			FROM tweets
		)
		SELECT %s
		FROM tweets
		WHERE created_at::date >= (SELECT max_date FROM latest_date) - INTERVAL '1 day'
		ORDER BY favorites DESC
		LIMIT $1`, tweetColumns)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("failed to fetch trending tweets", "error", err)
		return nil, fmt.Errorf("failed to fetch trending tweets: %w", err)
	}
	defer rows.Close()

	return scanTweets(rows)
}

func scanTweets(rows pgx.Rows) ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	for rows.Next() {
		var tw domain.Tweet
		if err := rows.Scan(
			&tw.Username,
			&tw.Text,
			&tw.CreatedAt,
			&tw.Retweets,
			&tw.Favorites,
			&tw.Link,
			&tw.MediaURL,
			&tw.Explanation,
			&tw.Categories,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}
		tweets = append(tweets, tw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweet rows: %w", err)
	}

	return tweets, nil
}
