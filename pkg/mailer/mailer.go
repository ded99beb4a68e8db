package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
)

// Message is an outbound email.
type Message struct {
	To      mail.Address
	ReplyTo *mail.Address
	Subject string
	Text    string
	HTML    string
}

// Validate checks that the message can be delivered.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To.Address) == "" {
		return fmt.Errorf("mail: recipient required")
	}
	if strings.TrimSpace(m.Text) == "" && strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("mail: content required")
	}
	return nil
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ConsoleMailer writes messages to the log instead of sending them.
type ConsoleMailer struct {
	logger *zap.Logger
}

// NewConsoleMailer builds a ConsoleMailer.
func NewConsoleMailer(logger *zap.Logger) *ConsoleMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleMailer{logger: logger}
}

// Send implements Mailer.
func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	fields := []zap.Field{
		zap.String("to", msg.To.String()),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	}
	if msg.ReplyTo != nil {
		fields = append(fields, zap.String("reply_to", msg.ReplyTo.String()))
	}
	m.logger.Info("mail", fields...)
	return nil
}
