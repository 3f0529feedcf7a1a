package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/game"
	"github.com/saulo-duarte/vinquiz/internal/health"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
	"github.com/saulo-duarte/vinquiz/internal/router"
	"github.com/saulo-duarte/vinquiz/internal/social"
	"github.com/saulo-duarte/vinquiz/internal/user"
)

type Container struct {
	DB    *gorm.DB
	Redis *redis.Client

	UserContainer    *user.UserContainer
	CatalogContainer *catalog.CatalogContainer
	SocialContainer  *social.SocialContainer
	GameContainer    *game.GameContainer

	Router http.Handler
}

// Models lists every persisted entity, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&catalog.GrapeVariety{},
		&catalog.WineDesignation{},
		&game.Game{},
		&social.Post{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.Init(cfg.LogLevel)
	auth.Init(cfg.Auth.JWTSecret)

	db, err := config.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	c := &Container{DB: db}
	checks := map[string]health.Checker{"database": health.DBChecker{DB: db}}

	idCache := catalog.NewMemoryCache(cfg.Catalog.CacheTTL)
	if cfg.Redis.URL != "" {
		rdb, err := OpenRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		c.Redis = rdb
		idCache = catalog.NewRedisCache(rdb, cfg.Catalog.CacheTTL)
		checks["redis"] = health.RedisChecker{Client: rdb}
		config.Logger.Info("Redis catalog cache enabled")
	}

	seed := uint64(cfg.Quiz.Seed)
	if seed == 0 {
		if seed, err = quiz.NewSeed(); err != nil {
			return nil, err
		}
	}

	c.UserContainer = user.NewUserContainer(db, cfg.Auth.TokenTTL, cfg.Auth.CookieDomain)
	c.CatalogContainer = catalog.NewCatalogContainer(db, idCache, cfg.Catalog.PageSize)
	c.SocialContainer = social.NewSocialContainer(db)
	c.GameContainer = game.NewGameContainer(
		db,
		c.CatalogContainer.Service,
		c.SocialContainer.Service,
		quiz.NewLockedRand(seed),
		game.Options{
			MaxResample:  cfg.Quiz.MaxResample,
			PostLanguage: cfg.PostLanguage,
		},
	)

	c.Router = router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		AuthHandler:        auth.NewHandler(cfg.Auth.CookieDomain),
		CatalogHandler:     c.CatalogContainer.Handler,
		GameHandler:        c.GameContainer.Handler,
		SocialHandler:      c.SocialContainer.Handler,
		HealthHandler:      health.NewHandler(checks),
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
	})

	return c, nil
}

func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenRedis connects and pings the redis server at rawURL.
func OpenRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
