package models

import (
	"time"

	"github.com/google/uuid"
)

type ShippingZone struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Countries []string  `json:"countries"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShippingMethod struct {
	ID              uuid.UUID `json:"id"`
	ZoneID          uuid.UUID `json:"zone_id"`
	Name            string    `json:"name"`
	Rate            float64   `json:"rate"`
	MinDeliveryDays int       `json:"min_delivery_days"`
	MaxDeliveryDays int       `json:"max_delivery_days"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateShippingZoneRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Countries []string `json:"countries" validate:"required,min=1,dive,len=2"`
}

type CreateShippingMethodRequest struct {
	ZoneID          uuid.UUID `json:"zone_id" validate:"required"`
	Name            string    `json:"name" validate:"required,max=100"`
	Rate            float64   `json:"rate" validate:"min=0"`
	MinDeliveryDays int       `json:"min_delivery_days" validate:"min=0"`
	MaxDeliveryDays int       `json:"max_delivery_days" validate:"min=0,gtefield=MinDeliveryDays"`
}

type UpdateShippingMethodRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=100"`
	Rate            *float64 `json:"rate" validate:"omitempty,min=0"`
	MinDeliveryDays *int     `json:"min_delivery_days" validate:"omitempty,min=0"`
	MaxDeliveryDays *int     `json:"max_delivery_days" validate:"omitempty,min=0"`
	Active          *bool    `json:"active"`
}
