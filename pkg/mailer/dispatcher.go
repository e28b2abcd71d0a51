package mailer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Publisher is the queue the dispatcher hands jobs to. Satisfied by
// helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Dispatcher enqueues email jobs without blocking the caller. Each dispatch
// returns a buffered channel carrying the publish outcome, so callers may
// await delivery hand-off or drop the channel and move on. Failures are
// always written to the dead-letter log either way, so a dropped channel
// never hides a lost email.
type Dispatcher struct {
	pub    Publisher
	logger *logrus.Logger
}

func NewDispatcher(pub Publisher, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{pub: pub, logger: logger}
}

// Dispatch publishes the job from a background goroutine. A fresh context is
// used on purpose: the triggering HTTP request returns before publishing
// completes and its context is already canceled by then.
func (d *Dispatcher) Dispatch(job EmailJob) <-chan error {
	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := d.pub.PublishJSON(ctx, job)
		if err != nil && d.logger != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"to":      job.To,
				"subject": job.Subject,
			}).Error("email dispatch failed")
		}
		done <- err
	}()
	return done
}
