// SPDX-License-Identifier: MIT

// Package metrics records run statistics in the Prometheus text format, for
// collection by the node_exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kevinoid/ytdl2rss/internal/feed"
)

const namespace = "ytdl2rss"

// Recorder holds the metrics of one process on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal      *prometheus.CounterVec
	failuresTotal  *prometheus.CounterVec
	videos         prometheus.Gauge
	items          prometheus.Gauge
	skipped        *prometheus.GaugeVec
	warnings       *prometheus.GaugeVec
	feedBytes      prometheus.Gauge
	buildSeconds   prometheus.Gauge
	lastSuccessful prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Feed generation runs by outcome",
		}, []string{"outcome"}), // outcome=success|failure
		failuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed runs by stage",
		}, []string{"stage"}), // stage=load|build|encode|items|write
		videos: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "videos",
			Help:      "Videos found in the input (last run)",
		}),
		items: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Items written to the feed (last run)",
		}),
		skipped: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_videos",
			Help:      "Videos skipped by reason (last run)",
		}, []string{"reason"}),
		warnings: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "warnings",
			Help:      "Recoverable problems by kind (last run), including skips",
		}, []string{"kind"}),
		feedBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_bytes",
			Help:      "Size of the generated feed in bytes (last run)",
		}),
		buildSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent loading input and building the feed (last run)",
		}),
		lastSuccessful: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordBuild records the outcome of feed.Build.
func (r *Recorder) RecordBuild(res *feed.Result, elapsed time.Duration) {
	r.videos.Set(float64(len(res.Outcomes)))
	r.items.Set(float64(res.Items))
	r.buildSeconds.Set(elapsed.Seconds())

	r.skipped.Reset()
	r.warnings.Reset()
	for _, w := range res.Warnings {
		reason := Reason(w.Err)
		r.warnings.WithLabelValues(reason).Inc()
		if w.Skipped {
			r.skipped.WithLabelValues(reason).Inc()
		}
	}
}

// RecordSuccess records a completed run which wrote n bytes.
func (r *Recorder) RecordSuccess(n int, now time.Time) {
	r.runsTotal.WithLabelValues("success").Inc()
	r.feedBytes.Set(float64(n))
	r.lastSuccessful.Set(float64(now.Unix()))
}

// RecordFailure records a run which failed at stage.
func (r *Recorder) RecordFailure(stage string) {
	r.runsTotal.WithLabelValues("failure").Inc()
	r.failuresTotal.WithLabelValues(stage).Inc()
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Reason maps a feed warning to a metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, feed.ErrMissingTitle):
		return "missing_title"
	case errors.Is(err, feed.ErrMissingID):
		return "missing_id"
	case errors.Is(err, feed.ErrNoMedia):
		return "no_media"
	case errors.Is(err, feed.ErrMediaNotFound):
		return "media_not_found"
	case errors.Is(err, feed.ErrUnknownMediaType):
		return "unknown_media_type"
	case errors.Is(err, feed.ErrInvalidUploadDate):
		return "invalid_upload_date"
	case errors.Is(err, feed.ErrUnavailableEntry):
		return "unavailable_entry"
	default:
		return "other"
	}
}
