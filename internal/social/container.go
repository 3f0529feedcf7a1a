package social

import "gorm.io/gorm"

type SocialContainer struct {
	Handler *Handler
	Service Service
}

func NewSocialContainer(db *gorm.DB) *SocialContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &SocialContainer{
		Handler: handler,
		Service: service,
	}
}
