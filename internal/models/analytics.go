package models

import "time"

// SalesSummary aggregates order activity over a half-open window [From, To).
type SalesSummary struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	OrderCount        int       `json:"order_count"`
	Revenue           float64   `json:"revenue"`
	AverageOrderValue float64   `json:"average_order_value"`
	CouponRedemptions int       `json:"coupon_redemptions"`
	AbandonedCarts    int       `json:"abandoned_carts"`
	RecoveredCarts    int       `json:"recovered_carts"`
}
