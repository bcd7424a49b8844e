package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
	"github.com/izzys-bakery/business-api/internal/app/storage"
)

// collectionTables maps each registered collection to its backing table. The
// order collection needs a distinct table name because ORDER is reserved in
// SQL.
var collectionTables = map[string]string{
	storage.CollectionBusiness: "app_businesses",
	storage.CollectionPastry:   "app_pastries",
	storage.CollectionOrder:    "app_orders",
}

// Store implements the storage interfaces backed by PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ storage.BusinessStore = (*Store)(nil)
var _ storage.PastryStore = (*Store)(nil)
var _ storage.OrderStore = (*Store)(nil)
var _ storage.SystemStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", storage.ErrInvalidID, id)
	}
	return nil
}

// --- BusinessStore ----------------------------------------------------------

func (s *Store) CreateBusiness(ctx context.Context, b business.Business) (business.Business, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_businesses (id, name, email, phone, business_type, address, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.ID, b.Name, b.Email, b.Phone, b.BusinessType, b.Address, b.Approved)
	if err != nil {
		return business.Business{}, err
	}
	return b, nil
}

func (s *Store) GetBusiness(ctx context.Context, id string) (business.Business, error) {
	if err := parseID(id); err != nil {
		return business.Business{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, business_type, address, approved
		FROM app_businesses
		WHERE id = $1
	`, id)

	var b business.Business
	if err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.BusinessType, &b.Address, &b.Approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return business.Business{}, fmt.Errorf("%w: business %s", storage.ErrNotFound, id)
		}
		return business.Business{}, err
	}
	return b, nil
}

func (s *Store) GetBusinessByEmail(ctx context.Context, email string) (business.Business, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, business_type, address, approved
		FROM app_businesses
		WHERE lower(email) = lower($1)
	`, email)

	var b business.Business
	if err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.BusinessType, &b.Address, &b.Approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return business.Business{}, fmt.Errorf("%w: business email %s", storage.ErrNotFound, email)
		}
		return business.Business{}, err
	}
	return b, nil
}

func (s *Store) SetBusinessApproved(ctx context.Context, id string, approved bool) (business.Business, error) {
	if err := parseID(id); err != nil {
		return business.Business{}, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE app_businesses
		SET approved = $2
		WHERE id = $1
	`, id, approved)
	if err != nil {
		return business.Business{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return business.Business{}, fmt.Errorf("%w: business %s", storage.ErrNotFound, id)
	}
	return s.GetBusiness(ctx, id)
}

func (s *Store) ListBusinesses(ctx context.Context, onlyPending bool) ([]business.Business, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, business_type, address, approved
		FROM app_businesses
		WHERE $1 = false OR approved = false
		ORDER BY name
	`, onlyPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []business.Business
	for rows.Next() {
		var b business.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.BusinessType, &b.Address, &b.Approved); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// --- PastryStore ------------------------------------------------------------

func (s *Store) CreatePastry(ctx context.Context, p pastry.Pastry) (pastry.Pastry, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_pastries (id, name, description, price, active)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Name, p.Description, p.Price, p.Active)
	if err != nil {
		return pastry.Pastry{}, err
	}
	return p, nil
}

func (s *Store) GetPastry(ctx context.Context, id string) (pastry.Pastry, error) {
	if err := parseID(id); err != nil {
		return pastry.Pastry{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, active
		FROM app_pastries
		WHERE id = $1
	`, id)

	var p pastry.Pastry
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pastry.Pastry{}, fmt.Errorf("%w: pastry %s", storage.ErrNotFound, id)
		}
		return pastry.Pastry{}, err
	}
	return p, nil
}

func (s *Store) ListPastries(ctx context.Context, activeOnly bool) ([]pastry.Pastry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, price, active
		FROM app_pastries
		WHERE $1 = false OR active = true
		ORDER BY name
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []pastry.Pastry
	for rows.Next() {
		var p pastry.Pastry
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// --- OrderStore -------------------------------------------------------------

func (s *Store) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return order.Order{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_orders (id, business_id, items, delivery_date, delivery_time, delivery_address, notes, subtotal, delivery_fee, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, o.ID, o.BusinessID, itemsJSON, o.DeliveryDate, o.DeliveryTime, o.DeliveryAddress, o.Notes, o.Subtotal, o.DeliveryFee, o.Total)
	if err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, businessID string) ([]order.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, business_id, items, delivery_date, delivery_time, delivery_address, notes, subtotal, delivery_fee, total
		FROM app_orders
		WHERE $1 = '' OR business_id = $1
		ORDER BY delivery_date, delivery_time
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var (
			o        order.Order
			itemsRaw []byte
		)
		if err := rows.Scan(&o.ID, &o.BusinessID, &itemsRaw, &o.DeliveryDate, &o.DeliveryTime, &o.DeliveryAddress, &o.Notes, &o.Subtotal, &o.DeliveryFee, &o.Total); err != nil {
			return nil, err
		}
		if len(itemsRaw) > 0 {
			if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
				return nil, err
			}
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// --- SystemStore ------------------------------------------------------------

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collections reports which registered collections have a backing table.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tablename FROM pg_tables WHERE schemaname = 'public'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var result []string
	for _, collection := range storage.Collections() {
		if present[collectionTables[collection]] {
			result = append(result, collection)
		}
	}
	return result, nil
}
