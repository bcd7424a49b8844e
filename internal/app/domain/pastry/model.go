package pastry

import (
	"fmt"
	"strings"
)

// Pastry is a catalog item available to order. Active controls default
// visibility in listings; inactive pastries stay in the catalog but are
// filtered out unless explicitly requested.
type Pastry struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

// Validate checks a catalog payload.
func (p Pastry) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
