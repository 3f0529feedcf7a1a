package game

import (
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/social"
	"gorm.io/gorm"
)

type GameContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewGameContainer(db *gorm.DB, cat catalog.Catalog, feed social.Service, rng catalog.Random, opts Options) *GameContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, cat, feed, rng, opts)
	handler := NewHandler(service)

	return &GameContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
