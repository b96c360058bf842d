// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinoid/ytdl2rss/internal/feed"
)

func sampleResult() *feed.Result {
	return &feed.Result{
		Items:   2,
		Skipped: 2,
		Outcomes: []feed.Outcome{
			{Index: 0}, {Index: 1}, {Index: 2, Err: feed.ErrMissingTitle}, {Index: 3, Err: feed.ErrNoMedia},
		},
		Warnings: []feed.Warning{
			{Index: -1, Err: fmt.Errorf("%w: entry 4", feed.ErrUnavailableEntry)},
			{Index: 1, Err: fmt.Errorf("%w: extension %q", feed.ErrUnknownMediaType, "xyz")},
			{Index: 2, Skipped: true, Err: feed.ErrMissingTitle},
			{Index: 3, Skipped: true, Err: feed.ErrNoMedia},
		},
	}
}

func TestRecordBuild(t *testing.T) {
	r := NewRecorder()
	r.RecordBuild(sampleResult(), 1500*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(r.videos))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.items))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.buildSeconds))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.skipped.WithLabelValues("missing_title")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.skipped.WithLabelValues("no_media")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.warnings.WithLabelValues("unknown_media_type")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.warnings.WithLabelValues("unavailable_entry")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.skipped))

	// A later clean run resets per-run gauges.
	r.RecordBuild(&feed.Result{Items: 1, Outcomes: []feed.Outcome{{}}}, time.Second)
	assert.Equal(t, 0, testutil.CollectAndCount(r.skipped))
	assert.Equal(t, 0, testutil.CollectAndCount(r.warnings))
}

func TestRecordRuns(t *testing.T) {
	r := NewRecorder()
	r.RecordFailure("load")
	r.RecordSuccess(1234, time.Unix(1700000000, 0))
	r.RecordSuccess(1000, time.Unix(1700000060, 0))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failuresTotal.WithLabelValues("load")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(r.feedBytes))
	assert.Equal(t, 1700000060.0, testutil.ToFloat64(r.lastSuccessful))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.RecordBuild(sampleResult(), time.Second)
	r.RecordSuccess(42, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "ytdl2rss.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# TYPE ytdl2rss_items gauge")
	assert.Contains(t, text, "ytdl2rss_items 2\n")
	assert.Contains(t, text, `ytdl2rss_skipped_videos{reason="missing_title"} 1`)
	assert.Contains(t, text, `ytdl2rss_runs_total{outcome="success"} 1`)
	assert.Contains(t, text, "ytdl2rss_feed_bytes 42\n")
	assert.True(t, strings.HasSuffix(text, "\n"))

	err = testutil.GatherAndCompare(r.Registry(), strings.NewReader(`
# HELP ytdl2rss_items Items written to the feed (last run)
# TYPE ytdl2rss_items gauge
ytdl2rss_items 2
`), "ytdl2rss_items")
	assert.NoError(t, err)
}

func TestRegistryFamilyTypes(t *testing.T) {
	r := NewRecorder()
	r.RecordBuild(sampleResult(), time.Second)
	r.RecordFailure("write")

	families, err := r.Registry().Gather()
	require.NoError(t, err)
	types := make(map[string]dto.MetricType, len(families))
	for _, mf := range families {
		types[mf.GetName()] = mf.GetType()
	}
	assert.Equal(t, dto.MetricType_COUNTER, types["ytdl2rss_runs_total"])
	assert.Equal(t, dto.MetricType_COUNTER, types["ytdl2rss_failures_total"])
	assert.Equal(t, dto.MetricType_GAUGE, types["ytdl2rss_skipped_videos"])
	assert.Equal(t, dto.MetricType_GAUGE, types["ytdl2rss_build_duration_seconds"])
	assert.Equal(t, dto.MetricType_GAUGE, types["ytdl2rss_last_success_timestamp_seconds"])
}

func TestReason(t *testing.T) {
	assert.Equal(t, "media_not_found", Reason(fmt.Errorf("%w: stat x: no such file", feed.ErrMediaNotFound)))
	assert.Equal(t, "missing_id", Reason(feed.ErrMissingID))
	assert.Equal(t, "invalid_upload_date", Reason(feed.ErrInvalidUploadDate))
	assert.Equal(t, "other", Reason(errors.New("boom")))
}
