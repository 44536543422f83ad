// Package metrics exposes Prometheus counters for the APT codec and correlation
// engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeResolved  = "resolved"
	OutcomeDiscarded = "discarded"
	OutcomeTimedOut  = "timed_out"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

var (
	registerOnce sync.Once

	bytesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apt",
			Subsystem: "transport",
			Name:      "bytes_received_total",
			Help:      "Bytes read from the controller.",
		},
	)
	framesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apt",
			Subsystem: "codec",
			Name:      "frames_sent_total",
			Help:      "Frames written to the controller.",
		},
		[]string{"message"},
	)
	framesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apt",
			Subsystem: "codec",
			Name:      "frames_decoded_total",
			Help:      "Frames decoded from the controller.",
		},
		[]string{"message"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apt",
			Subsystem: "codec",
			Name:      "decode_errors_total",
			Help:      "Inbound frames that failed to decode.",
		},
		[]string{"kind"},
	)
	correlations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apt",
			Subsystem: "correlation",
			Name:      "replies_total",
			Help:      "Correlation outcomes for inbound replies and pending requests.",
		},
		[]string{"outcome"},
	)
	pendingRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "apt",
			Subsystem: "correlation",
			Name:      "pending_requests",
			Help:      "Requests currently awaiting a reply.",
		},
	)
)

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(bytesReceived, framesSent, framesDecoded, decodeErrors, correlations, pendingRequests)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

func RecordBytesReceived(n int) {
	Register()
	bytesReceived.Add(float64(n))
}

func RecordFrameSent(message string) {
	Register()
	framesSent.WithLabelValues(message).Inc()
}

func RecordFrameDecoded(message string) {
	Register()
	framesDecoded.WithLabelValues(message).Inc()
}

func RecordDecodeError(kind string) {
	Register()
	decodeErrors.WithLabelValues(kind).Inc()
}

func RecordCorrelation(outcome string) {
	Register()
	correlations.WithLabelValues(outcome).Inc()
}

func SetPendingRequests(n int) {
	Register()
	pendingRequests.Set(float64(n))
}
