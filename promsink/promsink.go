// Package promsink wraps a jsontext.Sink with Prometheus counters so
// services can watch how much JSON a writer produces and whether its sink
// keeps up.
package promsink

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/antflydb/jsontext"
)

// Metrics holds the counters recorded by instrumented sinks. One Metrics
// value can be shared by any number of sinks.
type Metrics struct {
	reservations    prometheus.Counter
	reserveFailures prometheus.Counter
	committedBytes  prometheus.Counter
}

// NewMetrics registers the sink counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		reservations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jsontext",
			Name:      "sink_reservations_total",
			Help:      "Number of sink reservations requested by writers.",
		}),
		reserveFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jsontext",
			Name:      "sink_reserve_failures_total",
			Help:      "Number of reservations the underlying sink could not satisfy.",
		}),
		committedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jsontext",
			Name:      "sink_committed_bytes_total",
			Help:      "Bytes of JSON committed to instrumented sinks.",
		}),
	}
}

// Sink counts reservations and committed bytes, delegating storage to the
// wrapped sink.
type Sink struct {
	inner   jsontext.Sink
	metrics *Metrics
}

// Wrap instruments sink with m.
func Wrap(sink jsontext.Sink, m *Metrics) *Sink {
	return &Sink{inner: sink, metrics: m}
}

func (s *Sink) Reserve(n int) ([]byte, error) {
	s.metrics.reservations.Inc()
	region, err := s.inner.Reserve(n)
	if err != nil {
		s.metrics.reserveFailures.Inc()
		return nil, err
	}
	return region, nil
}

func (s *Sink) Commit(used int) {
	s.metrics.committedBytes.Add(float64(used))
	s.inner.Commit(used)
}

// Flush flushes the wrapped sink when it buffers output.
func (s *Sink) Flush() error {
	if f, ok := s.inner.(jsontext.Flusher); ok {
		return f.Flush()
	}
	return nil
}

var _ jsontext.Sink = (*Sink)(nil)
var _ jsontext.Flusher = (*Sink)(nil)
