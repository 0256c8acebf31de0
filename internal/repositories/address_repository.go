package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	// CreateAddress and UpdateAddress clear any previous default for the
	// customer in the same transaction when the address is flagged default.
	CreateAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id, customerID uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, customer_id, recipient, line1, line2, city, postal_code, country, phone, is_default, created_at, updated_at`

func (r *addressRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE customer_id = $1
		ORDER BY is_default DESC, created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.Address

	for rows.Next() {
		var a models.Address
		if err := scanAddressInto(rows, &a); err != nil {
			return nil, err
		}

		addresses = append(addresses, a)
	}

	return addresses, rows.Err()
}

func (r *addressRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	address := &models.Address{}

	err := scanAddressInto(r.DB.QueryRowContext(dbCtx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE id = $1
	`, id), address)
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if address.IsDefault {
		if err := clearDefault(dbCtx, tx, address.CustomerID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO addresses (id, customer_id, recipient, line1, line2, city, postal_code, country, phone, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query,
		address.ID, address.CustomerID, address.Recipient, address.Line1, address.Line2,
		address.City, address.PostalCode, address.Country, address.Phone, address.IsDefault,
	).Scan(&address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	return tx.Commit()
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if address.IsDefault {
		if err := clearDefault(dbCtx, tx, address.CustomerID); err != nil {
			return err
		}
	}

	query := `
		UPDATE addresses
		SET recipient = $1, line1 = $2, line2 = $3, city = $4, postal_code = $5,
			country = $6, phone = $7, is_default = $8, updated_at = NOW()
		WHERE id = $9 AND customer_id = $10
	`

	result, err := tx.ExecContext(dbCtx, query,
		address.Recipient, address.Line1, address.Line2, address.City, address.PostalCode,
		address.Country, address.Phone, address.IsDefault, address.ID, address.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id, customerID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM addresses WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func clearDefault(ctx context.Context, tx *sql.Tx, customerID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE customer_id = $1 AND is_default = TRUE`,
		customerID,
	); err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}

	return nil
}

func scanAddressInto(row rowScanner, a *models.Address) error {
	err := row.Scan(
		&a.ID, &a.CustomerID, &a.Recipient, &a.Line1, &a.Line2, &a.City,
		&a.PostalCode, &a.Country, &a.Phone, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}

		return fmt.Errorf("scanning address: %w", err)
	}

	return nil
}
