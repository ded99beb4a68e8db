package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/mail"
	"sync"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/pkg/jobs"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Message
	fail int
}

func (r *recordingMailer) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail > 0 {
		r.fail--
		return errors.New("smtp down")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingMailer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func sample() Message {
	return Message{To: mail.Address{Name: "Ada", Address: "ada@example.com"}, Subject: "Hello", Text: "body"}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample().Validate())
	assert.Error(t, Message{Text: "x"}.Validate())
	assert.Error(t, Message{To: mail.Address{Address: "a@b.co"}}.Validate())
}

func TestDispatcherSendsInlineWhenStopped(t *testing.T) {
	rec := &recordingMailer{}
	d := NewDispatcher(rec, jobs.QueueConfig{})
	require.NoError(t, d.Send(context.Background(), sample()))
	assert.Equal(t, 1, rec.count())
}

func TestDispatcherRetriesQueuedMail(t *testing.T) {
	rec := &recordingMailer{fail: 1}
	d := NewDispatcher(rec, jobs.QueueConfig{MaxRetries: 2, RetryDelay: 2 * time.Millisecond})
	d.Start(context.Background())
	defer d.Stop()

	require.NoError(t, d.Send(context.Background(), sample()))
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 2*time.Millisecond)
}

func TestSendgridMailerBuildsV3Request(t *testing.T) {
	m := NewSendgridMailer("key", "Syntax Scout", "no-reply@syntaxscout.dev")
	var captured rest.Request
	m.do = func(req rest.Request) (*rest.Response, error) {
		captured = req
		return &rest.Response{StatusCode: 202}, nil
	}

	require.NoError(t, m.Send(context.Background(), sample()))
	assert.Equal(t, "https://api.sendgrid.com/v3/mail/send", captured.BaseURL)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	personalizations := body["personalizations"].([]interface{})
	assert.Equal(t, "[Syntax Scout] Hello", personalizations[0].(map[string]interface{})["subject"])
}

func TestSendgridMailerReportsRejection(t *testing.T) {
	m := NewSendgridMailer("key", "Syntax Scout", "no-reply@syntaxscout.dev")
	m.do = func(rest.Request) (*rest.Response, error) {
		return &rest.Response{StatusCode: 401, Body: "unauthorized"}, nil
	}
	assert.ErrorContains(t, m.Send(context.Background(), sample()), "status 401")
}
