package order

import (
	"fmt"
	"strings"
)

// Item is one line within an order. PastryID optionally ties the line to a
// catalog entry; name-only lines are allowed.
type Item struct {
	PastryID  *string `json:"pastry_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is placed by an approved business against the pastry catalog.
// Subtotal, delivery fee and total are caller-supplied; the service stores
// them verbatim and enforces no arithmetic relation between them.
type Order struct {
	ID              string  `json:"id,omitempty"`
	BusinessID      string  `json:"business_id"`
	Items           []Item  `json:"items"`
	DeliveryDate    string  `json:"delivery_date"`
	DeliveryTime    string  `json:"delivery_time"`
	DeliveryAddress string  `json:"delivery_address"`
	Notes           string  `json:"notes,omitempty"`
	Subtotal        float64 `json:"subtotal"`
	DeliveryFee     float64 `json:"delivery_fee"`
	Total           float64 `json:"total"`
}

// Validate checks an order payload before any store access.
func (o Order) Validate() error {
	if strings.TrimSpace(o.BusinessID) == "" {
		return fmt.Errorf("business_id is required")
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}
	for i, item := range o.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("items[%d]: name is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d]: quantity must be at least 1", i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("items[%d]: unit_price must not be negative", i)
		}
	}
	if strings.TrimSpace(o.DeliveryDate) == "" {
		return fmt.Errorf("delivery_date is required")
	}
	if strings.TrimSpace(o.DeliveryTime) == "" {
		return fmt.Errorf("delivery_time is required")
	}
	if strings.TrimSpace(o.DeliveryAddress) == "" {
		return fmt.Errorf("delivery_address is required")
	}
	if o.Subtotal < 0 {
		return fmt.Errorf("subtotal must not be negative")
	}
	if o.DeliveryFee < 0 {
		return fmt.Errorf("delivery_fee must not be negative")
	}
	if o.Total < 0 {
		return fmt.Errorf("total must not be negative")
	}
	return nil
}
