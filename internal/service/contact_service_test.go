package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/mailer"
)

type captureMailer struct {
	sent []mailer.Message
	err  error
}

func (c *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func TestContactSubmitDeliversToInbox(t *testing.T) {
	m := &captureMailer{}
	svc := NewContactService(m, "hello@syntaxscout.dev", nil)

	msg, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hi there"})
	require.NoError(t, err)
	assert.Equal(t, contactSent, msg)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "hello@syntaxscout.dev", m.sent[0].To.Address)
	assert.Equal(t, "General Inquiry", m.sent[0].Subject)
	assert.Equal(t, "ada@example.com", m.sent[0].ReplyTo.Address)
	assert.Contains(t, m.sent[0].Text, "Hi there")
}

func TestContactSubmitValidation(t *testing.T) {
	m := &captureMailer{}
	svc := NewContactService(m, "hello@syntaxscout.dev", nil)

	_, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Ada", Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Please fill in all required fields.", appErrors.FromError(err).Message)

	_, err = svc.Submit(context.Background(), models.ContactRequest{Name: "Ada", Email: "ada@", Message: "x"})
	require.Error(t, err)
	assert.Equal(t, msgInvalidEmail, appErrors.FromError(err).Fields["email"])
	assert.Empty(t, m.sent)
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	svc := NewContactService(&captureMailer{err: errors.New("smtp down")}, "hello@syntaxscout.dev", nil)
	_, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "x"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.Equal(t, "Something went wrong. Please try again later.", appErr.Message)
}
