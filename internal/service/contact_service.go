package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/mailer"
)

const (
	defaultContactSubject = "General Inquiry"
	contactSent           = "Your message has been sent successfully!"
)

type mailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ContactService relays the public contact form to the site inbox.
type ContactService struct {
	mail   mailSender
	inbox  mail.Address
	logger *zap.Logger
}

// NewContactService delivers contact messages to inbox.
func NewContactService(sender mailSender, inbox string, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{mail: sender, inbox: mail.Address{Name: "Syntax Scout", Address: inbox}, logger: logger}
}

// Submit validates and sends the form, returning the confirmation copy.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	req.Subject = strings.TrimSpace(req.Subject)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Please fill in all required fields.")
	}
	if !ValidEmail(req.Email) {
		return "", appErrors.Validation(map[string]string{"email": msgInvalidEmail})
	}
	if req.Subject == "" {
		req.Subject = defaultContactSubject
	}

	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", req.Name, req.Email, strings.TrimSpace(req.Phone), req.Message)
	msg := mailer.Message{
		To:      s.inbox,
		ReplyTo: &mail.Address{Name: req.Name, Address: req.Email},
		Subject: req.Subject,
		Text:    body,
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.logger.Warn("contact delivery failed", zap.String("email", req.Email), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Something went wrong. Please try again later.")
	}
	s.logger.Sugar().Infow("contact message sent", "email", req.Email, "subject", req.Subject)
	return contactSent, nil
}
