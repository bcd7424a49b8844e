package storage

import (
	"context"
	"errors"

	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
)

// Sentinel errors shared by all store implementations. The store owns the
// identifier encoding, so it is also the layer that decides whether an id is
// well formed.
var (
	// ErrNotFound signals that no document matches the given identifier.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID signals a malformed document identifier.
	ErrInvalidID = errors.New("malformed document id")
)

// Collection names each entity kind explicitly rather than deriving them from
// type names.
const (
	CollectionBusiness = "business"
	CollectionPastry   = "pastry"
	CollectionOrder    = "order"
)

// Collections lists every collection the service persists, in registry order.
func Collections() []string {
	return []string{CollectionBusiness, CollectionPastry, CollectionOrder}
}

// BusinessStore persists business records.
type BusinessStore interface {
	CreateBusiness(ctx context.Context, b business.Business) (business.Business, error)
	GetBusiness(ctx context.Context, id string) (business.Business, error)
	GetBusinessByEmail(ctx context.Context, email string) (business.Business, error)
	SetBusinessApproved(ctx context.Context, id string, approved bool) (business.Business, error)
	ListBusinesses(ctx context.Context, onlyPending bool) ([]business.Business, error)
}

// PastryStore persists catalog entries.
type PastryStore interface {
	CreatePastry(ctx context.Context, p pastry.Pastry) (pastry.Pastry, error)
	GetPastry(ctx context.Context, id string) (pastry.Pastry, error)
	ListPastries(ctx context.Context, activeOnly bool) ([]pastry.Pastry, error)
}

// OrderStore persists orders.
type OrderStore interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
	ListOrders(ctx context.Context, businessID string) ([]order.Order, error)
}

// SystemStore reports store connectivity for the diagnostics endpoint.
type SystemStore interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}
