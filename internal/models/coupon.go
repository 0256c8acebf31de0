package models

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountFreeShip    DiscountType = "FREE_SHIPPING"
)

type Coupon struct {
	ID                uuid.UUID    `json:"id"`
	Code              string       `json:"code"`
	Description       string       `json:"description,omitempty"`
	DiscountType      DiscountType `json:"discount_type"`
	DiscountValue     float64      `json:"discount_value"`
	MinOrderValue     *float64     `json:"min_order_value,omitempty"`
	MaxDiscountAmount *float64     `json:"max_discount_amount,omitempty"`
	MaxUses           *int         `json:"max_uses,omitempty"`
	MaxUsesPerUser    *int         `json:"max_uses_per_user,omitempty"`
	ValidFrom         *time.Time   `json:"valid_from,omitempty"`
	ValidUntil        *time.Time   `json:"valid_until,omitempty"`
	ProductIDs        []uuid.UUID  `json:"product_ids,omitempty"`
	CollectionIDs     []uuid.UUID  `json:"collection_ids,omitempty"`
	Active            bool         `json:"active"`
	CurrentUses       int          `json:"current_uses"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type CreateCouponRequest struct {
	Code              string       `json:"code" validate:"required,min=3,max=32"`
	Description       string       `json:"description" validate:"max=500"`
	DiscountType      DiscountType `json:"discount_type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT FREE_SHIPPING"`
	DiscountValue     float64      `json:"discount_value" validate:"min=0"`
	MinOrderValue     *float64     `json:"min_order_value" validate:"omitempty,min=0"`
	MaxDiscountAmount *float64     `json:"max_discount_amount" validate:"omitempty,min=0"`
	MaxUses           *int         `json:"max_uses" validate:"omitempty,min=1"`
	MaxUsesPerUser    *int         `json:"max_uses_per_user" validate:"omitempty,min=1"`
	ValidFrom         *time.Time   `json:"valid_from"`
	ValidUntil        *time.Time   `json:"valid_until"`
	ProductIDs        []uuid.UUID  `json:"product_ids"`
	CollectionIDs     []uuid.UUID  `json:"collection_ids"`
}

// ValidateCouponRequest carries the cart context for a validation call.
// Product and collection id sets come from the cart so scoped coupons can
// be matched without re-reading the cart server side.
type ValidateCouponRequest struct {
	Code          string      `json:"code" validate:"required"`
	Subtotal      float64     `json:"subtotal" validate:"min=0"`
	ProductIDs    []uuid.UUID `json:"product_ids"`
	CollectionIDs []uuid.UUID `json:"collection_ids"`
}

type CouponValidationResult struct {
	Code           string       `json:"code"`
	DiscountType   DiscountType `json:"discount_type"`
	DiscountAmount float64      `json:"discount_amount"`
	FreeShipping   bool         `json:"free_shipping"`
}
