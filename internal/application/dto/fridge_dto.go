package dto

import "time"

// LendFridgeRequest entrega de refrigeradores a un cliente.
type LendFridgeRequest struct {
	CustomerID   string     `json:"customer_id" validate:"required"`
	Quantity     int        `json:"quantity" validate:"gt=0"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Note         string     `json:"note" validate:"max=500"`
}

// ReturnFridgeRequest devolución. Date opcional.
type ReturnFridgeRequest struct {
	Date *time.Time `json:"date"`
}

// FridgeLoanResponse préstamo.
type FridgeLoanResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	Quantity     int        `json:"quantity"`
	DeliveryDate time.Time  `json:"delivery_date"`
	Status       string     `json:"status"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Note         string     `json:"note"`
}
