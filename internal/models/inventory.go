package models

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementRestock    MovementType = "RESTOCK"
	MovementOrder      MovementType = "ORDER"
	MovementReturn     MovementType = "RETURN"
	MovementCorrection MovementType = "CORRECTION"
)

type InventoryRecord struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	Variant        *string   `json:"variant,omitempty"`
	QuantityTotal  int       `json:"quantity_total"`
	TrackInventory bool      `json:"track_inventory"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StockMovement is an append-only audit entry. Rows are never updated or
// deleted once written.
type StockMovement struct {
	ID          uuid.UUID    `json:"id"`
	InventoryID uuid.UUID    `json:"inventory_id"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Reason      *string      `json:"reason,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type AdjustInventoryRequest struct {
	Delta  int          `json:"delta" validate:"required"`
	Type   MovementType `json:"type" validate:"required,oneof=RESTOCK ORDER RETURN CORRECTION"`
	Reason *string      `json:"reason" validate:"omitempty,max=500"`
}
