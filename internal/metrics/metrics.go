package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vivaha",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route", "status"},
	)

	inquiriesSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vivaha",
			Name:      "inquiries_submitted_total",
			Help:      "Contact inquiries durably persisted.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vivaha",
			Name:      "inquiry_notifications_total",
			Help:      "Inquiry notification outcomes (delivered, failed, dropped).",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, inquiriesSubmitted, notifications)
	})
}

// IncHTTP increments the request counter for a route.
func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// IncInquirySubmitted counts a persisted inquiry.
func IncInquirySubmitted() {
	inquiriesSubmitted.Inc()
}

// IncNotification counts a notification outcome.
func IncNotification(outcome string) {
	notifications.WithLabelValues(outcome).Inc()
}
