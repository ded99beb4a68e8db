package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/noah-isme/syntaxscout-api/pkg/mailer"
)

// MailCodeNotifier sends the "code sent" notice by mail. The notice carries
// no code because none is issued.
type MailCodeNotifier struct {
	mail mailSender
}

// NewMailCodeNotifier builds a notifier over sender.
func NewMailCodeNotifier(sender mailSender) *MailCodeNotifier {
	return &MailCodeNotifier{mail: sender}
}

// NotifyCodeSent implements CodeNotifier.
func (n *MailCodeNotifier) NotifyCodeSent(ctx context.Context, email string, ttl time.Duration) error {
	return n.mail.Send(ctx, mailer.Message{
		To:      mail.Address{Address: email},
		Subject: "Password reset requested",
		Text: fmt.Sprintf("A password reset was requested for this address. Enter your verification code within %d minutes to continue.",
			int(ttl/time.Minute)),
	})
}
