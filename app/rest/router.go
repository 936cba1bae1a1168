package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"chronicle-service/app/port"
	"chronicle-service/app/rest/handlers"
	custommw "chronicle-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	AuthUsecase       port.AuthUsecase
	PreferenceUsecase port.PreferenceUsecase
	FollowUsecase     port.FollowUsecase
	ArticleUsecase    port.ArticleUsecase
	TweetUsecase      port.TweetUsecase
	SelectionUsecase  port.SelectionUsecase
	DB                handlers.Pinger
	EnableDebug       bool
}

// NewRouter creates and configures the Echo router. Routes stay flat and
// verb-in-path because that is the surface the deployed mobile client
// calls; the inconsistent casing of the follow routes is inherited too.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.HTTPErrorHandler = newHTTPErrorHandler(config.Logger)

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	prefHandler := handlers.NewPreferenceHandler(config.PreferenceUsecase, config.Logger)
	followHandler := handlers.NewFollowHandler(config.FollowUsecase, config.Logger)
	articleHandler := handlers.NewArticleHandler(config.ArticleUsecase, config.Logger)
	tweetHandler := handlers.NewTweetHandler(config.TweetUsecase, config.Logger)
	selectionHandler := handlers.NewSelectionHandler(config.SelectionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Accounts
	e.POST("/check-login", authHandler.CheckLogin)
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/deactivate-user", authHandler.DeactivateUser)
	e.POST("/reactivate-user", authHandler.ReactivateUser)
	e.POST("/delete-user", authHandler.DeleteUser)

	// Preferences
	e.POST("/add-preference", prefHandler.AddPreference)
	e.POST("/check-preferences", prefHandler.CheckPreferences)
	e.POST("/delete-preferences", prefHandler.DeletePreferences)

	// Following
	e.POST("/follow_Users", followHandler.FollowUser)
	e.POST("/get_followed_users", followHandler.GetFollowedUsers)

	// Articles
	e.POST("/get-articles", articleHandler.GetArticles)
	e.POST("/get-allarticles", articleHandler.GetAllArticles)
	e.POST("/get-article-by-id", articleHandler.GetArticleByID)
	e.POST("/get-related", articleHandler.GetRelated)

	// Tweets
	e.POST("/get-tweets", tweetHandler.GetTweets)
	e.POST("/get-alltweets", tweetHandler.GetAllTweets)
	e.POST("/get-tweet-by-link", tweetHandler.GetTweetByLink)
	e.GET("/get_trending_tweets", tweetHandler.GetTrendingTweets)

	// Selection slots
	e.POST("/set-username", selectionHandler.SetUsername)
	e.GET("/get-username", selectionHandler.GetUsername)
	e.POST("/set-article-id", selectionHandler.SetArticleID)
	e.GET("/get-article-id", selectionHandler.GetArticleID)
	e.POST("/set-tweet-link", selectionHandler.SetTweetLink)
	e.GET("/get-tweet-link", selectionHandler.GetTweetLink)

	// Operations
	e.GET("/health", healthHandler.HealthCheck)

	return e
}
