package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	// UpsertByCMSID writes the catalog projection for a CMS change event.
	// The CMS id is the stable key; the local uuid survives upserts.
	UpsertByCMSID(ctx context.Context, product *models.Product) error
	GetByCMSID(ctx context.Context, cmsID string) (*models.Product, error)
	DeactivateByCMSID(ctx context.Context, cmsID string) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) UpsertByCMSID(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	collectionIDs, err := json.Marshal(product.CollectionIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal collection ids: %w", err)
	}

	query := `
		INSERT INTO products (id, cms_id, slug, name, description, price, collection_ids, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		ON CONFLICT (cms_id) DO UPDATE
		SET slug = EXCLUDED.slug, name = EXCLUDED.name, description = EXCLUDED.description,
			price = EXCLUDED.price, collection_ids = EXCLUDED.collection_ids,
			active = TRUE, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		uuid.New(), product.CMSID, product.Slug, product.Name, product.Description,
		product.Price, collectionIDs,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetByCMSID(ctx context.Context, cmsID string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	var collectionIDs []byte

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT id, cms_id, slug, name, description, price, collection_ids, active, created_at, updated_at
		FROM products
		WHERE cms_id = $1
	`, cmsID).Scan(
		&product.ID, &product.CMSID, &product.Slug, &product.Name, &product.Description,
		&product.Price, &collectionIDs, &product.Active, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying product: %w", err)
	}

	if len(collectionIDs) > 0 {
		if err := json.Unmarshal(collectionIDs, &product.CollectionIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal collection ids: %w", err)
		}
	}

	return product, nil
}

func (r *productRepository) DeactivateByCMSID(ctx context.Context, cmsID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE products SET active = FALSE, updated_at = NOW() WHERE cms_id = $1`, cmsID)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
