package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// PaidLikeStatuses are the order states that count as a completed coupon
// redemption for per-customer usage caps.
var PaidLikeStatuses = []OrderStatus{OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered}

// Order is written by the checkout flow outside this service. This service
// reads it for coupon usage counts and analytics, and links cart sessions
// to it when payment is confirmed.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	CustomerID  *uuid.UUID  `json:"customer_id,omitempty"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	CouponCode  *string     `json:"coupon_code,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Variant   *string   `json:"variant,omitempty"`
	Quantity  int       `json:"quantity"`
}
