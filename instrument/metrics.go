package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AnatoleLucet/reactivity"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactivity").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for notification fan-out.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reactivity",
		Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts graph edits and propagation.
//
// Metrics collected:
//   - reactivity_edges_linked_total
//   - reactivity_edges_unlinked_total
//   - reactivity_signal_changes_total
//   - reactivity_reactive_invocations_total{mode="tracked|untracked"}
//   - reactivity_notification_fanout: subscribers notified per change
type Metrics struct {
	linked      prometheus.Counter
	unlinked    prometheus.Counter
	changes     prometheus.Counter
	invocations *prometheus.CounterVec
	fanout      prometheus.Histogram
}

// NewMetrics registers the collectors and returns the observer.
// It panics if they are already registered on the registry, like promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		linked: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "edges_linked_total",
			Help:        "Total number of signal to reactive edges created",
			ConstLabels: config.ConstLabels,
		}),

		unlinked: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "edges_unlinked_total",
			Help:        "Total number of signal to reactive edges removed",
			ConstLabels: config.ConstLabels,
		}),

		changes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signal_changes_total",
			Help:        "Total number of signal writes that changed the value",
			ConstLabels: config.ConstLabels,
		}),

		invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reactive_invocations_total",
			Help:        "Total number of reactive callback runs by mode",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		fanout: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notification_fanout",
			Help:        "Number of subscribers notified per signal change",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) Linked(reactivity.Node, reactivity.Node) {
	m.linked.Inc()
}

func (m *Metrics) Unlinked(reactivity.Node, reactivity.Node) {
	m.unlinked.Inc()
}

func (m *Metrics) Changed(_ reactivity.Node, subscribers int) {
	m.changes.Inc()
	m.fanout.Observe(float64(subscribers))
}

func (m *Metrics) Invoked(_ reactivity.Node, tracked bool) {
	mode := "untracked"
	if tracked {
		mode = "tracked"
	}

	m.invocations.WithLabelValues(mode).Inc()
}
