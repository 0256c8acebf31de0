package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/gildedthread/storefront-api/pkg/sendgrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error)
	Subscribe(ctx context.Context, req *models.NewsletterSubscribeRequest) (*models.NewsletterSubscriber, error)
}

type contactService struct {
	repo         repository.ContactRepository
	email        sendgrid.EmailService
	contactEmail string
	sanitizer    *bluemonday.Policy
}

func NewContactService(repo repository.ContactRepository, email sendgrid.EmailService, contactEmail string) ContactService {
	return &contactService{
		repo:         repo,
		email:        email,
		contactEmail: contactEmail,
		// Strict policy: submissions are plain text, all markup is stripped.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {

	msg := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(s.sanitizer.Sanitize(req.Name)),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(s.sanitizer.Sanitize(req.Subject)),
		Message: strings.TrimSpace(s.sanitizer.Sanitize(req.Message)),
	}

	if msg.Message == "" {
		return nil, appErrors.ValidationError("Message cannot be empty")
	}

	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return nil, appErrors.DatabaseError("Failed to store contact message").WithError(err)
	}

	// Notification delivery is best effort; the submission is already saved.
	if s.email != nil {
		notification := &sendgrid.Email{
			To:      s.contactEmail,
			Subject: fmt.Sprintf("New contact message from %s", msg.Name),
			Content: fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", msg.Name, msg.Email, msg.Subject, msg.Message),
		}

		if err := s.email.Send(ctx, notification); err != nil {
			slog.Warn("Failed to send contact notification", slog.String("error", err.Error()))
		}
	}

	return msg, nil
}

func (s *contactService) Subscribe(ctx context.Context, req *models.NewsletterSubscribeRequest) (*models.NewsletterSubscriber, error) {

	sub := &models.NewsletterSubscriber{
		ID:    uuid.New(),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := s.repo.UpsertSubscriber(ctx, sub); err != nil {
		return nil, appErrors.DatabaseError("Failed to subscribe").WithError(err)
	}

	return sub, nil
}
