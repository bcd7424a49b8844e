package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/storage"
	"github.com/izzys-bakery/business-api/pkg/logger"
)

// ErrEmailTaken is returned when a signup reuses an existing business email.
var ErrEmailTaken = errors.New("business with this email already exists")

// Service manages business signup and approval.
type Service struct {
	store storage.BusinessStore
	log   *logger.Logger
}

// New constructs a business service.
func New(store storage.BusinessStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("businesses")
	}
	return &Service{store: store, log: log}
}

// Signup registers a new business. The approved flag is forced to false no
// matter what the payload carried. Email uniqueness is a check-then-insert;
// it is not atomic against concurrent signups.
func (s *Service) Signup(ctx context.Context, b business.Business) (business.Business, error) {
	b.Email = strings.TrimSpace(b.Email)
	if err := b.Validate(); err != nil {
		return business.Business{}, err
	}

	if _, err := s.store.GetBusinessByEmail(ctx, b.Email); err == nil {
		return business.Business{}, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return business.Business{}, fmt.Errorf("email lookup failed: %w", err)
	}

	b.ID = ""
	b.Approved = false
	created, err := s.store.CreateBusiness(ctx, b)
	if err != nil {
		return business.Business{}, err
	}
	s.log.WithField("business_id", created.ID).
		WithField("business_type", created.BusinessType).
		Info("business signed up")
	return created, nil
}

// SetApproved flips the approval flag. Re-approving an already-approved
// business is a no-op that returns the current state.
func (s *Service) SetApproved(ctx context.Context, id string, approved bool) (business.Business, error) {
	updated, err := s.store.SetBusinessApproved(ctx, id, approved)
	if err != nil {
		return business.Business{}, err
	}
	s.log.WithField("business_id", id).
		WithField("approved", approved).
		Info("business approval changed")
	return updated, nil
}

// Get returns one business by id.
func (s *Service) Get(ctx context.Context, id string) (business.Business, error) {
	return s.store.GetBusiness(ctx, id)
}

// List returns all businesses, optionally restricted to pending ones.
func (s *Service) List(ctx context.Context, onlyPending bool) ([]business.Business, error) {
	return s.store.ListBusinesses(ctx, onlyPending)
}
