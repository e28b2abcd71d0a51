package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	err  error
	seen []EmailJob
}

func (p *stubPublisher) PublishJSON(_ context.Context, body any) error {
	if job, ok := body.(EmailJob); ok {
		p.seen = append(p.seen, job)
	}
	return p.err
}

func await(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not complete")
		return nil
	}
}

func TestDispatchReportsSuccess(t *testing.T) {
	pub := &stubPublisher{}
	d := NewDispatcher(pub, nil)

	err := await(t, d.Dispatch(NewOTPJob("a@x.com", "123456", 15*time.Minute)))
	require.NoError(t, err)
	require.Len(t, pub.seen, 1)
	assert.Equal(t, "a@x.com", pub.seen[0].To)
	assert.Contains(t, pub.seen[0].Body, "123456")
}

func TestDispatchReportsFailure(t *testing.T) {
	pub := &stubPublisher{err: errors.New("broker down")}
	d := NewDispatcher(pub, nil)

	err := await(t, d.Dispatch(EmailJob{To: "a@x.com"}))
	assert.Error(t, err)
}

func TestOTPJobTemplate(t *testing.T) {
	job := NewOTPJob("a@x.com", "042137", 15*time.Minute)
	assert.Equal(t, "a@x.com", job.To)
	assert.Equal(t, "Verify your account", job.Subject)
	assert.Equal(t, "Your OTP is 042137. It expires in 15 minutes.", job.Body)
}
