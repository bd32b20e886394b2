package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/ports"
)

const namespace = "bundlestats"

// Observer implements ports.PipelineObserver with Prometheus collectors
type Observer struct {
	chunkBytes   *prometheus.HistogramVec
	chunks       prometheus.Counter
	pending      prometheus.Gauge
	pushes       *prometheus.CounterVec
	registry     *prometheus.Registry
	stepDuration *prometheus.HistogramVec
	stepFailures *prometheus.CounterVec
	trunkBranch  string
}

// Verify interface compliance at compile time
var _ ports.PipelineObserver = (*Observer)(nil)

// NewObserver creates an Observer with its own registry.
// Pushes are labelled by whether they were made on trunkBranch.
func NewObserver(trunkBranch string) *Observer {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Observer{
		chunkBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "chunk_size_bytes",
				Help:      "Recorded chunk sizes",
				Buckets:   prometheus.ExponentialBuckets(1024, 4, 10), // 1KiB to ~256MiB
			},
			[]string{"kind"},
		),
		chunks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_stats_recorded_total",
			Help:      "Total number of chunk stat rows written",
		}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_pushes",
			Help:      "Pending pushes seen by the last poll",
		}),
		pushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pushes_total",
				Help:      "Pushes taken through the pipeline, by outcome",
			},
			[]string{"outcome", "trunk"},
		),
		registry: registry,
		stepDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "step_duration_seconds",
				Help:      "Duration of pipeline steps",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 0.1s to ~27min
			},
			[]string{"step"},
		),
		stepFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "step_failures_total",
				Help:      "Failed pipeline steps",
			},
			[]string{"step"},
		),
		trunkBranch: trunkBranch,
	}
}

// ChunkRecorded implements PipelineObserver.ChunkRecorded
func (o *Observer) ChunkRecorded(stat domain.ChunkStat) {
	o.chunks.Inc()
	o.chunkBytes.WithLabelValues("stat").Observe(float64(stat.StatSize))
	o.chunkBytes.WithLabelValues("parsed").Observe(float64(stat.ParsedSize))
	o.chunkBytes.WithLabelValues("gzip").Observe(float64(stat.GzipSize))
}

// PushCompleted implements PipelineObserver.PushCompleted
func (o *Observer) PushCompleted(push domain.Push, outcome domain.Outcome) {
	trunk := "false"
	if push.Branch == o.trunkBranch {
		trunk = "true"
	}
	o.pushes.WithLabelValues(string(outcome), trunk).Inc()
}

// QueuePolled implements PipelineObserver.QueuePolled
func (o *Observer) QueuePolled(pending int) {
	o.pending.Set(float64(pending))
}

// StepFinished implements PipelineObserver.StepFinished
func (o *Observer) StepFinished(step domain.Step, elapsed time.Duration, err error) {
	o.stepDuration.WithLabelValues(string(step)).Observe(elapsed.Seconds())
	if err != nil {
		o.stepFailures.WithLabelValues(string(step)).Inc()
	}
}

// Registry returns the registry holding the collectors
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// Handler serves /metrics and /health
func (o *Observer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// NoopObserver discards all events
type NoopObserver struct{}

// Verify interface compliance at compile time
var _ ports.PipelineObserver = NoopObserver{}

func (NoopObserver) ChunkRecorded(domain.ChunkStat) {}

func (NoopObserver) PushCompleted(domain.Push, domain.Outcome) {}

func (NoopObserver) QueuePolled(int) {}

func (NoopObserver) StepFinished(domain.Step, time.Duration, error) {}
