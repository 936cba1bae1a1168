package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle-service/app/domain"
	"chronicle-service/app/utils/logger"
)

func createTestArticleRepository(t *testing.T) (*ArticleRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewArticleRepository(mockDB, testLogger).(*ArticleRepository)
	return repo, mockDB
}

func articleRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "link", "headline", "category", "short_description", "authors", "date", "cluster_id",
	})
}

func TestArticleRepository_FetchByCategory_Capped(t *testing.T) {
	repo, mockDB := createTestArticleRepository(t)
	defer mockDB.Close()

	rows := articleRows().
		AddRow(int64(1), "https://news.example/1", "Rates climb", "Economics", "A short take", "J. Doe", "2024-11-02", int64(3)).
		AddRow(int64(2), "https://news.example/2", "Markets steady", "Economics", "Another take", "A. Roe", "2024-11-03", int64(0))

	mockDB.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs("Econom", 1000).
		WillReturnRows(rows)

	articles, err := repo.FetchByCategory(context.Background(), "Econom", 1000)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, int64(1), articles[0].ID)
	assert.Equal(t, "Rates climb", articles[0].Headline)
	assert.Equal(t, int64(3), articles[0].ClusterID)
}

func TestArticleRepository_FetchByCategory_Uncapped(t *testing.T) {
	repo, mockDB := createTestArticleRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs("Sports").
		WillReturnRows(articleRows())

	articles, err := repo.FetchByCategory(context.Background(), "Sports", 0)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestArticleRepository_GetByID(t *testing.T) {
	repo, mockDB := createTestArticleRepository(t)
	defer mockDB.Close()

	rows := articleRows().
		AddRow(int64(5), "https://news.example/5", "Headline five", "Science", "Desc", "B. Poe", "2024-11-01", int64(-1))

	mockDB.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	article, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), article.ID)
	assert.False(t, article.HasCluster())
}

func TestArticleRepository_GetByID_NotFound(t *testing.T) {
	repo, mockDB := createTestArticleRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleRepository_FetchByCluster(t *testing.T) {
	repo, mockDB := createTestArticleRepository(t)
	defer mockDB.Close()

	rows := articleRows().
		AddRow(int64(7), "https://news.example/7", "Related one", "Science", "Desc", "C. Moe", "2024-11-01", int64(3)).
		AddRow(int64(8), "https://news.example/8", "Related two", "Science", "Desc", "C. Moe", "2024-11-02", int64(3))

	mockDB.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(int64(3), int64(5), 1000).
		WillReturnRows(rows)

	articles, err := repo.FetchByCluster(context.Background(), 3, 5, 1000)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	for _, a := range articles {
		assert.Equal(t, int64(3), a.ClusterID)
		assert.NotEqual(t, int64(5), a.ID)
	}
}
