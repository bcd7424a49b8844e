package pastries

import (
	"context"

	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
	"github.com/izzys-bakery/business-api/internal/app/storage"
	"github.com/izzys-bakery/business-api/pkg/logger"
)

// Service manages the pastry catalog. There is no update or delete; inactive
// pastries simply drop out of default listings.
type Service struct {
	store storage.PastryStore
	log   *logger.Logger
}

// New constructs a catalog service.
func New(store storage.PastryStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("pastries")
	}
	return &Service{store: store, log: log}
}

// Create adds a catalog entry. No uniqueness constraint applies.
func (s *Service) Create(ctx context.Context, p pastry.Pastry) (pastry.Pastry, error) {
	if err := p.Validate(); err != nil {
		return pastry.Pastry{}, err
	}

	p.ID = ""
	created, err := s.store.CreatePastry(ctx, p)
	if err != nil {
		return pastry.Pastry{}, err
	}
	s.log.WithField("pastry_id", created.ID).
		WithField("active", created.Active).
		Info("pastry created")
	return created, nil
}

// List returns catalog entries, restricted to active ones by default.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]pastry.Pastry, error) {
	return s.store.ListPastries(ctx, activeOnly)
}
