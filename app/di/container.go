package di

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/config"
	"chronicle-service/app/driver/memory"
	"chronicle-service/app/driver/postgres"
	"chronicle-service/app/port"
	"chronicle-service/app/rest"
	"chronicle-service/app/usecase"
	apperrors "chronicle-service/app/utils/errors"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	SelectionStore port.SelectionStore

	// Usecases
	AuthUsecase       port.AuthUsecase
	PreferenceUsecase port.PreferenceUsecase
	FollowUsecase     port.FollowUsecase
	ArticleUsecase    port.ArticleUsecase
	TweetUsecase      port.TweetUsecase
	SelectionUsecase  port.SelectionUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to initialize database", err)
	}

	container.SelectionStore = memory.NewSelectionStore(logger)

	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	prefRepository := postgres.NewPreferenceRepository(container.DB.Pool(), logger)
	followRepository := postgres.NewFollowRepository(container.DB.Pool(), logger)
	articleRepository := postgres.NewArticleRepository(container.DB.Pool(), logger)
	tweetRepository := postgres.NewTweetRepository(container.DB.Pool(), logger)

	container.AuthUsecase = usecase.NewAuthUseCase(userRepository, logger)
	container.PreferenceUsecase = usecase.NewPreferenceUseCase(prefRepository, logger)
	container.FollowUsecase = usecase.NewFollowUseCase(followRepository, logger)
	container.ArticleUsecase = usecase.NewArticleUseCase(articleRepository, cfg.ArticleListLimit, logger)
	container.TweetUsecase = usecase.NewTweetUseCase(tweetRepository, cfg.TweetListLimit, cfg.TrendingListLimit, logger)
	container.SelectionUsecase = usecase.NewSelectionUseCase(container.SelectionStore, logger)

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:            c.Logger,
		AuthUsecase:       c.AuthUsecase,
		PreferenceUsecase: c.PreferenceUsecase,
		FollowUsecase:     c.FollowUsecase,
		ArticleUsecase:    c.ArticleUsecase,
		TweetUsecase:      c.TweetUsecase,
		SelectionUsecase:  c.SelectionUsecase,
		DB:                c.DB,
		EnableDebug:       c.Config.LogLevel == "debug",
	})
}

// Close releases held resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
