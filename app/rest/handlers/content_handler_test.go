package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chronicle-service/app/domain"
	"chronicle-service/app/mocks"
)

func TestArticleHandler_GetArticles(t *testing.T) {
	t.Run("matches go out under Articles found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetArticles(gomock.Any(), "POLITICS", true).Return([]domain.Article{
			{ID: 1, Headline: "First", Category: "POLITICS", ClusterID: 3},
		}, nil)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-articles", `{"category":"POLITICS"}`)
		require.NoError(t, h.GetArticles(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Status string           `json:"status"`
			Data   []domain.Article `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Articles found", resp.Status)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, int64(3), resp.Data[0].ClusterID)

		// clusterID must keep its historical JSON casing
		assert.Contains(t, rec.Body.String(), `"clusterID":3`)
	})

	t.Run("zero matches is a soft 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetArticles(gomock.Any(), "OBSCURE", true).Return(nil, nil)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-articles", `{"category":"OBSCURE"}`)
		require.NoError(t, h.GetArticles(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No articles found", decodeStatus(t, rec).Status)
	})

	t.Run("uncapped variant asks for everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetArticles(gomock.Any(), "", false).Return(nil, nil)

		h := NewArticleHandler(uc, testLogger())
		c, _ := postJSON(echo.New(), "/get-allarticles", `{}`)
		require.NoError(t, h.GetAllArticles(c))
	})
}

func TestArticleHandler_GetArticleByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetArticleByID(gomock.Any(), int64(42)).Return(&domain.Article{ID: 42}, nil)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-article-by-id", `{"id":42}`)
		require.NoError(t, h.GetArticleByID(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Article found", decodeStatus(t, rec).Status)
	})

	t.Run("missing article is a soft 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetArticleByID(gomock.Any(), int64(99)).Return(nil, domain.ErrArticleNotFound)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-article-by-id", `{"id":99}`)
		require.NoError(t, h.GetArticleByID(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No article found with the given ID", decodeStatus(t, rec).Status)
	})

	t.Run("missing id is a hard 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-article-by-id", `{}`)
		require.NoError(t, h.GetArticleByID(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Article ID is required", decodeStatus(t, rec).Error)
	})
}

func TestArticleHandler_GetRelated(t *testing.T) {
	t.Run("unclustered article yields Success with empty data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetRelated(gomock.Any(), int64(10)).Return([]domain.Article{}, nil)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-related", `{"id":10}`)
		require.NoError(t, h.GetRelated(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Success", decodeStatus(t, rec).Status)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("cluster members come back as data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockArticleUsecase(ctrl)
		uc.EXPECT().GetRelated(gomock.Any(), int64(10)).Return([]domain.Article{{ID: 11}, {ID: 12}}, nil)

		h := NewArticleHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-related", `{"id":10}`)
		require.NoError(t, h.GetRelated(c))

		var resp struct {
			Status string           `json:"status"`
			Data   []domain.Article `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Success", resp.Status)
		assert.Len(t, resp.Data, 2)
	})
}

func TestTweetHandler_GetTweets(t *testing.T) {
	t.Run("matches go out with the historical field casing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockTweetUsecase(ctrl)
		uc.EXPECT().GetTweets(gomock.Any(), "SPORTS", true).Return([]domain.Tweet{
			{Username: "newsbot", Text: "kickoff", Link: "https://x.com/newsbot/1", CreatedAt: time.Now()},
		}, nil)

		h := NewTweetHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-tweets", `{"category":"SPORTS"}`)
		require.NoError(t, h.GetTweets(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Tweets found", decodeStatus(t, rec).Status)
		body := rec.Body.String()
		assert.Contains(t, body, `"Tweet":"kickoff"`)
		assert.Contains(t, body, `"Tweet_Link"`)
		assert.Contains(t, body, `"Created_At"`)
	})

	t.Run("zero matches is a soft 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockTweetUsecase(ctrl)
		uc.EXPECT().GetTweets(gomock.Any(), "OBSCURE", true).Return(nil, nil)

		h := NewTweetHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-tweets", `{"category":"OBSCURE"}`)
		require.NoError(t, h.GetTweets(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No tweets found", decodeStatus(t, rec).Status)
	})
}

func TestTweetHandler_GetTweetByLink(t *testing.T) {
	t.Run("missing link is a hard 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockTweetUsecase(ctrl)

		h := NewTweetHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-tweet-by-link", `{}`)
		require.NoError(t, h.GetTweetByLink(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Tweet link is required", decodeStatus(t, rec).Error)
	})

	t.Run("missing tweet is a soft 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockTweetUsecase(ctrl)
		uc.EXPECT().GetTweetByLink(gomock.Any(), "https://x.com/gone/1").Return(nil, domain.ErrTweetNotFound)

		h := NewTweetHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/get-tweet-by-link", `{"link":"https://x.com/gone/1"}`)
		require.NoError(t, h.GetTweetByLink(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No tweet found with the given link", decodeStatus(t, rec).Status)
	})
}

func TestTweetHandler_GetTrendingTweets(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTweetUsecase(ctrl)
	uc.EXPECT().GetTrendingTweets(gomock.Any()).Return([]domain.Tweet{
		{Username: "a", Favorites: 900},
		{Username: "b", Favorites: 500},
	}, nil)

	h := NewTweetHandler(uc, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/get_trending_tweets", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h.GetTrendingTweets(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status string         `json:"status"`
		Data   []domain.Tweet `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.GreaterOrEqual(t, resp.Data[0].Favorites, resp.Data[1].Favorites)
}
