package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/pkg/jobs"
)

const jobType = "mail.send"

// Dispatcher sends mail asynchronously on a jobs.Queue, falling back to a
// synchronous send when the queue is not running.
type Dispatcher struct {
	mailer Mailer
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewDispatcher wires a dispatcher and its queue. The queue is not started.
func NewDispatcher(m Mailer, cfg jobs.QueueConfig) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	d := &Dispatcher{mailer: m, logger: cfg.Logger}
	d.queue = jobs.NewQueue("mail", d.handle, cfg)
	return d
}

// Start begins the worker pool.
func (d *Dispatcher) Start(ctx context.Context) { d.queue.Start(ctx) }

// Stop drains workers.
func (d *Dispatcher) Stop() { d.queue.Stop() }

// Send implements Mailer.
func (d *Dispatcher) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if d.queue.Running() {
		err := d.queue.Enqueue(jobs.Job{Type: jobType, Payload: msg})
		if err == nil {
			return nil
		}
		d.logger.Warn("mail queue unavailable, sending inline", zap.Error(err))
	}
	return d.mailer.Send(ctx, msg)
}

func (d *Dispatcher) handle(ctx context.Context, job jobs.Job) error {
	msg, ok := job.Payload.(Message)
	if !ok {
		return fmt.Errorf("mail job %s: unexpected payload %T", job.ID, job.Payload)
	}
	return d.mailer.Send(ctx, msg)
}
