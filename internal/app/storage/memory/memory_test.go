package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
	"github.com/izzys-bakery/business-api/internal/app/storage"
)

func TestBusinessRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateBusiness(ctx, business.Business{Name: "Izzy's", Email: "a@b.com", BusinessType: "bakery", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", created.ID)
	}

	got, err := store.GetBusiness(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: %v vs %v", got, created)
	}

	byEmail, err := store.GetBusinessByEmail(ctx, "A@B.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, byEmail.ID)
	}
}

func TestBusinessErrors(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.GetBusiness(ctx, "nope"); !errors.Is(err, storage.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := store.GetBusiness(ctx, uuid.NewString()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetBusinessByEmail(ctx, "ghost@b.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound by email, got %v", err)
	}
	if _, err := store.SetBusinessApproved(ctx, uuid.NewString(), true); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on approve, got %v", err)
	}
}

func TestListBusinessesPendingFilter(t *testing.T) {
	store := New()
	ctx := context.Background()

	a, _ := store.CreateBusiness(ctx, business.Business{Name: "A", Email: "a@x.com", BusinessType: "cafe", Address: "1"})
	b, _ := store.CreateBusiness(ctx, business.Business{Name: "B", Email: "b@x.com", BusinessType: "cafe", Address: "2"})
	if _, err := store.SetBusinessApproved(ctx, a.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}

	pending, err := store.ListBusinesses(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != b.ID {
		t.Fatalf("expected only %s pending, got %v", b.ID, pending)
	}

	all, err := store.ListBusinesses(ctx, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 businesses, got %d", len(all))
	}
}

func TestOrderCloneIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	pastryID := uuid.NewString()
	created, err := store.CreateOrder(ctx, order.Order{
		BusinessID:      uuid.NewString(),
		Items:           []order.Item{{PastryID: &pastryID, Name: "Croissant", Quantity: 1, UnitPrice: 3.5}},
		DeliveryDate:    "2026-09-15",
		DeliveryTime:    "08:30",
		DeliveryAddress: "1 Main St",
		Subtotal:        3.5,
		Total:           3.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the returned copy must not affect the stored document.
	created.Items[0].Name = "Tampered"
	*created.Items[0].PastryID = "tampered"

	list, err := store.ListOrders(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Items[0].Name != "Croissant" || *list[0].Items[0].PastryID != pastryID {
		t.Fatalf("stored order was mutated: %+v", list[0].Items[0])
	}
}

func TestCollections(t *testing.T) {
	store := New()

	names, err := store.Collections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	want := []string{"business", "pastry", "order"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestListPastriesActiveFilter(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.CreatePastry(ctx, pastry.Pastry{Name: "Croissant", Price: 3.5, Active: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreatePastry(ctx, pastry.Pastry{Name: "Stollen", Price: 12, Active: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	active, err := store.ListPastries(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Croissant" {
		t.Fatalf("expected only active pastry, got %v", active)
	}

	all, err := store.ListPastries(ctx, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 pastries, got %d", len(all))
	}
}
