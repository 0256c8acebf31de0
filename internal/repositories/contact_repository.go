package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
)

type ContactRepository interface {
	InsertMessage(ctx context.Context, msg *models.ContactMessage) error
	// UpsertSubscriber is idempotent on email.
	UpsertSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepo(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) InsertMessage(ctx context.Context, msg *models.ContactMessage) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) UpsertSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, subscribed_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, sub.ID, sub.Email).
		Scan(&sub.ID, &sub.SubscribedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert newsletter subscriber: %w", err)
	}

	return nil
}
