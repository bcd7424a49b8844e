package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/storage"
	"github.com/izzys-bakery/business-api/pkg/logger"
)

var (
	// ErrBusinessNotApproved gates order creation on business approval.
	ErrBusinessNotApproved = errors.New("business not approved")
	// ErrInvalidPastry is wrapped with the offending id when an order line
	// references a pastry that does not resolve.
	ErrInvalidPastry = errors.New("invalid pastry id")
)

// Service validates and records orders.
type Service struct {
	businesses storage.BusinessStore
	pastries   storage.PastryStore
	store      storage.OrderStore
	log        *logger.Logger
}

// New constructs an order service.
func New(businesses storage.BusinessStore, pastries storage.PastryStore, store storage.OrderStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("orders")
	}
	return &Service{businesses: businesses, pastries: pastries, store: store, log: log}
}

// Create runs the order validation pipeline and inserts the order verbatim.
// Pipeline order matters: business resolution, then the approval gate, then
// per-line pastry resolution. Subtotal, delivery fee and total are stored as
// supplied; no derived values are computed or cross-checked.
func (s *Service) Create(ctx context.Context, o order.Order) (order.Order, error) {
	if err := o.Validate(); err != nil {
		return order.Order{}, err
	}

	b, err := s.businesses.GetBusiness(ctx, o.BusinessID)
	if err != nil {
		return order.Order{}, err
	}
	if !b.Approved {
		return order.Order{}, ErrBusinessNotApproved
	}

	for _, item := range o.Items {
		if item.PastryID == nil {
			continue
		}
		if _, err := s.pastries.GetPastry(ctx, *item.PastryID); err != nil {
			return order.Order{}, fmt.Errorf("%w: %s", ErrInvalidPastry, *item.PastryID)
		}
	}

	o.ID = ""
	created, err := s.store.CreateOrder(ctx, o)
	if err != nil {
		return order.Order{}, err
	}
	s.log.WithField("order_id", created.ID).
		WithField("business_id", created.BusinessID).
		WithField("items", len(created.Items)).
		Info("order created")
	return created, nil
}

// List returns orders, filtered by business id when one is given. The filter
// is an exact match; no existence check is performed on the id.
func (s *Service) List(ctx context.Context, businessID string) ([]order.Order, error) {
	return s.store.ListOrders(ctx, businessID)
}
