package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mithramani/vivaha-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNotifier records deliveries and fails the first failCount calls.
type stubNotifier struct {
	mu        sync.Mutex
	calls     int
	failCount int
	delivered []InquiryNotification
}

func (s *stubNotifier) Notify(ctx context.Context, n InquiryNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failCount {
		return errors.New("delivery failed")
	}
	s.delivered = append(s.delivered, n)
	return nil
}

func (s *stubNotifier) snapshot() (int, []InquiryNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls, append([]InquiryNotification(nil), s.delivered...)
}

func testNotification(id string) InquiryNotification {
	return InquiryNotification{
		InquiryID:     id,
		CustomerName:  "Priya",
		CustomerPhone: "+91 90000 00000",
		VendorName:    "Photovea Studio",
		VendorSlug:    "photovea-studio",
		SubmittedAt:   time.Now(),
	}
}

func fastRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func TestDispatcher_DeliversEnqueuedNotification(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(notifier, 4, fastRetryPolicy())

	assert.True(t, d.Enqueue(testNotification("inq-1")))
	d.Stop()

	_, delivered := notifier.snapshot()
	require.Len(t, delivered, 1)
	assert.Equal(t, "inq-1", delivered[0].InquiryID)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	notifier := &stubNotifier{failCount: 2}
	d := NewDispatcher(notifier, 4, fastRetryPolicy())

	assert.True(t, d.Enqueue(testNotification("inq-1")))
	d.Stop()

	calls, delivered := notifier.snapshot()
	assert.Equal(t, 3, calls)
	require.Len(t, delivered, 1)
}

func TestDispatcher_AbandonsAfterRetriesExhausted(t *testing.T) {
	notifier := &stubNotifier{failCount: 100}
	d := NewDispatcher(notifier, 4, fastRetryPolicy())

	assert.True(t, d.Enqueue(testNotification("inq-1")))
	d.Stop()

	// MaxRetries 2 means three attempts total, then give up
	calls, delivered := notifier.snapshot()
	assert.Equal(t, 3, calls)
	assert.Empty(t, delivered)
}

func TestDispatcher_EnqueueAfterStopIsRejected(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(notifier, 4, fastRetryPolicy())
	d.Stop()

	assert.False(t, d.Enqueue(testNotification("inq-late")))
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(&stubNotifier{}, 4, fastRetryPolicy())
	d.Stop()
	d.Stop()
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	policy := RetryPolicy{
		MaxRetries:    3,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2,
	}

	assert.Equal(t, 500*time.Millisecond, policy.NextDelay(1))
	assert.Equal(t, time.Second, policy.NextDelay(2))
	assert.Equal(t, 2*time.Second, policy.NextDelay(3))

	// Clamped to MaxDelay once the exponent overshoots
	assert.Equal(t, 5*time.Second, policy.NextDelay(10))

	// Out-of-range attempts fall back to the first delay
	assert.Equal(t, 500*time.Millisecond, policy.NextDelay(0))
}

func TestEmailNotifier_Notify(t *testing.T) {
	notifier := NewEmailNotifier(config.NotifyConfig{
		AdminEmail: "admin@example.com",
		FromEmail:  "no-reply@example.com",
	})

	err := notifier.Notify(context.Background(), testNotification("inq-1"))
	assert.NoError(t, err)
}

func TestEmailNotifier_Notify_CancelledContext(t *testing.T) {
	notifier := NewEmailNotifier(config.NotifyConfig{
		AdminEmail: "admin@example.com",
		FromEmail:  "no-reply@example.com",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Notify(ctx, testNotification("inq-1"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmailNotifier_RenderBody(t *testing.T) {
	notifier := NewEmailNotifier(config.NotifyConfig{})

	body := notifier.renderBody(testNotification("inq-1"))
	assert.Contains(t, body, "New Contact Inquiry Received")
	assert.Contains(t, body, "- Name: Priya")
	assert.Contains(t, body, "Vendor: Photovea Studio")
	assert.Contains(t, body, "Inquiry ID: inq-1")
}
