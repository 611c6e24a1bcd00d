package notify

import (
	"context"
	"sync"
	"time"

	"github.com/mithramani/vivaha-backend/internal/metrics"
	"github.com/mithramani/vivaha-backend/pkg/logger"
)

// Dispatcher decouples notification delivery from the request path. The
// inquiry service enqueues after its durable write commits; a single
// worker goroutine delivers with retry. Enqueue never blocks: when the
// queue is full the notification is dropped and counted, because inquiry
// durability always wins over notification delivery.
type Dispatcher struct {
	notifier Notifier
	policy   RetryPolicy
	queue    chan InquiryNotification

	stopOnce sync.Once
	stopped  chan struct{}
	done     chan struct{}
}

func NewDispatcher(notifier Notifier, queueSize int, policy RetryPolicy) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		notifier: notifier,
		policy:   policy,
		queue:    make(chan InquiryNotification, queueSize),
		stopped:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue hands a notification to the worker without blocking the caller.
// Returns false when the notification was dropped (queue full or
// dispatcher stopped).
func (d *Dispatcher) Enqueue(n InquiryNotification) bool {
	select {
	case <-d.stopped:
		metrics.IncNotification("dropped")
		logger.Warn("Notification dropped: dispatcher stopped", map[string]interface{}{
			"inquiry_id": n.InquiryID,
		})
		return false
	default:
	}

	select {
	case d.queue <- n:
		return true
	default:
		metrics.IncNotification("dropped")
		logger.Warn("Notification dropped: queue full", map[string]interface{}{
			"inquiry_id":  n.InquiryID,
			"vendor_slug": n.VendorSlug,
		})
		return false
	}
}

// Stop drains the queue and waits for in-flight delivery to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopped)
		close(d.queue)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n InquiryNotification) {
	attempts := d.policy.MaxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := d.notifier.Notify(ctx, n)
		cancel()

		if err == nil {
			metrics.IncNotification("delivered")
			return
		}

		logger.Warn("Inquiry notification attempt failed", map[string]interface{}{
			"inquiry_id": n.InquiryID,
			"attempt":    attempt,
			"error":      err.Error(),
		})

		if attempt < attempts {
			time.Sleep(d.policy.NextDelay(attempt))
		}
	}

	metrics.IncNotification("failed")
	logger.Error("Inquiry notification abandoned after retries", nil, map[string]interface{}{
		"inquiry_id":  n.InquiryID,
		"vendor_slug": n.VendorSlug,
		"attempts":    attempts,
	})
}
