package catalog

import "gorm.io/gorm"

type CatalogContainer struct {
	Handler  *Handler
	Service  Service
	Importer *Importer
}

func NewCatalogContainer(db *gorm.DB, cache IDCache, pageSize int) *CatalogContainer {
	repo := NewRepository(db)
	service := NewService(repo, cache, pageSize)
	handler := NewHandler(service)

	return &CatalogContainer{
		Handler:  handler,
		Service:  service,
		Importer: NewImporter(repo, cache),
	}
}
