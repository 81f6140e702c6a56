package cataloging

import (
	"context"

	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

// CatalogService expõe os dados de referência consumidos pelos filtros do
// dashboard.
type CatalogService interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	ListChannels(ctx context.Context) ([]*domain.Channel, error)
}

type Service struct {
	catalogRepository repository.CatalogRepository
}

func NewService(catalogRepository repository.CatalogRepository) CatalogService {
	return &Service{
		catalogRepository: catalogRepository,
	}
}

func (s *Service) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.catalogRepository.ListStores(ctx)
}

func (s *Service) ListChannels(ctx context.Context) ([]*domain.Channel, error) {
	return s.catalogRepository.ListChannels(ctx)
}
