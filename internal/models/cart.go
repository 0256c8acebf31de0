package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Price     float64   `json:"price" validate:"min=0"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Image     string    `json:"image,omitempty"`
	Slug      string    `json:"slug,omitempty"`
	Variant   *string   `json:"variant,omitempty"`
}

// CartSession is a server-persisted snapshot of an in-progress cart, keyed
// by an opaque token and/or the owning customer. Once a session is linked
// to a completed order it is frozen and never reconciled again.
type CartSession struct {
	ID             uuid.UUID  `json:"id"`
	SessionToken   string     `json:"session_token"`
	CustomerID     *uuid.UUID `json:"customer_id,omitempty"`
	Items          []CartItem `json:"items"`
	Subtotal       float64    `json:"subtotal"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	AbandonedAt    *time.Time `json:"abandoned_at,omitempty"`
	RecoveredAt    *time.Time `json:"recovered_at,omitempty"`
	OrderID        *uuid.UUID `json:"order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SaveCartRequest struct {
	SessionToken *string    `json:"session_token"`
	Items        []CartItem `json:"items" validate:"dive"`
}

type SaveCartResponse struct {
	SessionToken *string `json:"session_token"`
	Subtotal     float64 `json:"subtotal"`
}
