package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscriber struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	SubscribedAt time.Time  `json:"subscribed_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
