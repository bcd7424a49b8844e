package business

import (
	"fmt"
	"strings"
)

// Business represents a customer organisation that signs up to place orders.
// Orders are gated on the Approved flag, which only flips through an explicit
// approval action.
type Business struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address"`
	Approved     bool   `json:"approved"`
}

// Validate checks the signup payload for required fields.
func (b Business) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(b.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(b.BusinessType) == "" {
		return fmt.Errorf("business_type is required")
	}
	if strings.TrimSpace(b.Address) == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}
