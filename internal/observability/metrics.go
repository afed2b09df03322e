package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "symptom_advisor"

// Metrics holds the Prometheus counters, histograms, and gauges for the advisor.
type Metrics struct {
	// Conversation metrics.
	Turns          *prometheus.CounterVec // labels: intent
	NotFound       prometheus.Counter
	CandidateCount prometheus.Histogram
	EmergencyTurns prometheus.Counter

	// Knowledge base metrics.
	KnowledgeBaseConditions prometheus.Gauge
	KnowledgeBaseLoad       prometheus.Histogram
	KnowledgeBaseFailures   prometheus.Counter
	SkippedRows             *prometheus.CounterVec // labels: table

	// Reply cache metrics.
	ReplyCache *prometheus.CounterVec // labels: result={hit,miss}

	// Consultation event metrics.
	EventsPublished prometheus.Counter
	EventsFailed    prometheus.Counter

	DiaryEntries prometheus.Counter
}

// NewMetrics creates and registers all advisor metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer creates all advisor metrics and registers them with reg.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Chat turns answered, by classified intent.",
		}, []string{"intent"}),
		NotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "symptom_not_found_total",
			Help:      "Symptom queries that matched no condition.",
		}),
		CandidateCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidates",
			Help:      "Conditions matched per symptom query before truncation.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 41},
		}),
		EmergencyTurns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergency_turns_total",
			Help:      "Chat turns that mentioned an emergency keyword.",
		}),
		KnowledgeBaseConditions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "knowledge_base_conditions",
			Help:      "Distinct conditions in the active knowledge base.",
		}),
		KnowledgeBaseLoad: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "knowledge_base_load_duration_seconds",
			Help:      "Duration of fetching, parsing, and building the knowledge base.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		KnowledgeBaseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kb_load_failures_total",
			Help:      "Knowledge base loads that fell back to the empty knowledge base.",
		}),
		SkippedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_rows_total",
			Help:      "Malformed source rows dropped while parsing, by table.",
		}, []string{"table"}),
		ReplyCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reply_cache_total",
			Help:      "Reply cache lookups by result.",
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consultation_events_published_total",
			Help:      "Consultation events written to Kafka.",
		}),
		EventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consultation_events_failed_total",
			Help:      "Consultation events that could not be written.",
		}),
		DiaryEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diary_entries_total",
			Help:      "Symptom diary entries recorded.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Turns,
		m.NotFound,
		m.CandidateCount,
		m.EmergencyTurns,
		m.KnowledgeBaseConditions,
		m.KnowledgeBaseLoad,
		m.KnowledgeBaseFailures,
		m.SkippedRows,
		m.ReplyCache,
		m.EventsPublished,
		m.EventsFailed,
		m.DiaryEntries,
	}
}
