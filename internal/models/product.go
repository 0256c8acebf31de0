package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a read-only projection of the CMS catalog. The content-sync
// webhook is the only writer; coupon scope checks and the storefront read it.
type Product struct {
	ID            uuid.UUID   `json:"id"`
	CMSID         string      `json:"cms_id"`
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Price         float64     `json:"price"`
	CollectionIDs []uuid.UUID `json:"collection_ids,omitempty"`
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

const (
	CMSEventProductCreated = "product.created"
	CMSEventProductUpdated = "product.updated"
	CMSEventProductDeleted = "product.deleted"
)

// CMSWebhookEvent is the change notification posted by the headless CMS.
type CMSWebhookEvent struct {
	Event   string            `json:"event" validate:"required"`
	Product CMSProductPayload `json:"product"`
}

type CMSProductPayload struct {
	CMSID         string      `json:"cms_id" validate:"required"`
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	CollectionIDs []uuid.UUID `json:"collection_ids"`
	InStock       bool        `json:"in_stock"`
	Variants      []string    `json:"variants"`
}
