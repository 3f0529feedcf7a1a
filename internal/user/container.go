package user

import (
	"time"

	"gorm.io/gorm"
)

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewUserContainer(db *gorm.DB, tokenTTL time.Duration, cookieDomain string) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, tokenTTL)
	handler := NewHandler(service, cookieDomain, int(tokenTTL.Seconds()))

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
