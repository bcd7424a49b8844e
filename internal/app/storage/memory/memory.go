package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
	"github.com/izzys-bakery/business-api/internal/app/storage"
)

// Store is an in-memory implementation of the storage interfaces. It is safe
// for concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu            sync.RWMutex
	businesses    map[string]business.Business
	businessOrder []string
	pastries      map[string]pastry.Pastry
	pastryOrder   []string
	orders        map[string]order.Order
	orderOrder    []string
}

var _ storage.BusinessStore = (*Store)(nil)
var _ storage.PastryStore = (*Store)(nil)
var _ storage.OrderStore = (*Store)(nil)
var _ storage.SystemStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		businesses: make(map[string]business.Business),
		pastries:   make(map[string]pastry.Pastry),
		orders:     make(map[string]order.Order),
	}
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", storage.ErrInvalidID, id)
	}
	return nil
}

// BusinessStore implementation ------------------------------------------------

func (s *Store) CreateBusiness(_ context.Context, b business.Business) (business.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	} else if _, exists := s.businesses[b.ID]; exists {
		return business.Business{}, fmt.Errorf("business %s already exists", b.ID)
	}

	s.businesses[b.ID] = b
	s.businessOrder = append(s.businessOrder, b.ID)
	return b, nil
}

func (s *Store) GetBusiness(_ context.Context, id string) (business.Business, error) {
	if err := validID(id); err != nil {
		return business.Business{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.businesses[id]
	if !ok {
		return business.Business{}, fmt.Errorf("%w: business %s", storage.ErrNotFound, id)
	}
	return b, nil
}

func (s *Store) GetBusinessByEmail(_ context.Context, email string) (business.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.businessOrder {
		if strings.EqualFold(s.businesses[id].Email, email) {
			return s.businesses[id], nil
		}
	}
	return business.Business{}, fmt.Errorf("%w: business email %s", storage.ErrNotFound, email)
}

func (s *Store) SetBusinessApproved(_ context.Context, id string, approved bool) (business.Business, error) {
	if err := validID(id); err != nil {
		return business.Business{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.businesses[id]
	if !ok {
		return business.Business{}, fmt.Errorf("%w: business %s", storage.ErrNotFound, id)
	}
	b.Approved = approved
	s.businesses[id] = b
	return b, nil
}

func (s *Store) ListBusinesses(_ context.Context, onlyPending bool) ([]business.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]business.Business, 0, len(s.businessOrder))
	for _, id := range s.businessOrder {
		b := s.businesses[id]
		if onlyPending && b.Approved {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// PastryStore implementation ----------------------------------------------------

func (s *Store) CreatePastry(_ context.Context, p pastry.Pastry) (pastry.Pastry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	} else if _, exists := s.pastries[p.ID]; exists {
		return pastry.Pastry{}, fmt.Errorf("pastry %s already exists", p.ID)
	}

	s.pastries[p.ID] = p
	s.pastryOrder = append(s.pastryOrder, p.ID)
	return p, nil
}

func (s *Store) GetPastry(_ context.Context, id string) (pastry.Pastry, error) {
	if err := validID(id); err != nil {
		return pastry.Pastry{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pastries[id]
	if !ok {
		return pastry.Pastry{}, fmt.Errorf("%w: pastry %s", storage.ErrNotFound, id)
	}
	return p, nil
}

func (s *Store) ListPastries(_ context.Context, activeOnly bool) ([]pastry.Pastry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]pastry.Pastry, 0, len(s.pastryOrder))
	for _, id := range s.pastryOrder {
		p := s.pastries[id]
		if activeOnly && !p.Active {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// OrderStore implementation -----------------------------------------------------

func (s *Store) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	} else if _, exists := s.orders[o.ID]; exists {
		return order.Order{}, fmt.Errorf("order %s already exists", o.ID)
	}
	o.Items = cloneItems(o.Items)

	s.orders[o.ID] = o
	s.orderOrder = append(s.orderOrder, o.ID)
	return cloneOrder(o), nil
}

func (s *Store) ListOrders(_ context.Context, businessID string) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]order.Order, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		o := s.orders[id]
		if businessID != "" && o.BusinessID != businessID {
			continue
		}
		result = append(result, cloneOrder(o))
	}
	return result, nil
}

// SystemStore implementation ----------------------------------------------------

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Collections(_ context.Context) ([]string, error) {
	return storage.Collections(), nil
}

// Helpers -----------------------------------------------------------------------

func cloneItems(items []order.Item) []order.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]order.Item, len(items))
	for i, item := range items {
		if item.PastryID != nil {
			id := *item.PastryID
			item.PastryID = &id
		}
		out[i] = item
	}
	return out
}

func cloneOrder(o order.Order) order.Order {
	o.Items = cloneItems(o.Items)
	return o
}
