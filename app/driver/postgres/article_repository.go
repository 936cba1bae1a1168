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

// ArticleRepository implements port.ArticleRepository for PostgreSQL.
// Articles are written by the import pipeline; this API only reads them.
type ArticleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewArticleRepository creates a new PostgreSQL article repository
func NewArticleRepository(db DatabaseIface, logger *slog.Logger) port.ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

const articleColumns = `id, link, headline, category, short_description, authors, date, cluster_id`

// FetchByCategory matches the category column by substring. The substring
// match (not exact) is observable client behavior and must stay.
// limit <= 0 means no cap.
func (r *ArticleRepository) FetchByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE category LIKE '%%' || $1 || '%%'
		ORDER BY id`, articleColumns)

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
		r.logger.Error("failed to fetch articles", "category", category, "error", err)
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetByID retrieves one article by its id
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE id = $1`, articleColumns)

	article := &domain.Article{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Link,
		&article.Headline,
		&article.Category,
		&article.ShortDescription,
		&article.Authors,
		&article.Date,
		&article.ClusterID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		r.logger.Error("failed to get article", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

// FetchByCluster returns the other members of a cluster. Callers are
// responsible for filtering out sentinel cluster ids first.
func (r *ArticleRepository) FetchByCluster(ctx context.Context, clusterID, excludeID int64, limit int) ([]domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE cluster_id = $1 AND id <> $2
		ORDER BY id
		LIMIT $3`, articleColumns)

	rows, err := r.db.Query(ctx, query, clusterID, excludeID, limit)
	if err != nil {
		r.logger.Error("failed to fetch cluster articles", "cluster_id", clusterID, "error", err)
		return nil, fmt.Errorf("failed to fetch cluster articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ID,
			&a.Link,
			&a.Headline,
			&a.Category,
			&a.ShortDescription,
			&a.Authors,
			&a.Date,
			&a.ClusterID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}
