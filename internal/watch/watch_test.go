// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatch_RebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "video.info.json")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(input, []byte(`{"title":"a"}`), 0o600))

	runs := make(chan struct{}, 16)
	ready := make(chan struct{})
	w := New([]string{input}, func(context.Context) error {
		runs <- struct{}{}
		return nil
	})
	w.Debounce = 20 * time.Millisecond
	w.Ready = func() { close(ready) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	<-ready
	waitRun(t, runs) // initial build

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	select {
	case <-runs:
		t.Fatal("change to an unwatched file triggered a rebuild")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(input, []byte(`{"title":"b"}`), 0o600))
	waitRun(t, runs)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_RunErrorsAreNotFatal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "video.info.json")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0o600))

	runs := make(chan struct{}, 16)
	w := New([]string{input}, func(context.Context) error {
		runs <- struct{}{}
		return assert.AnError
	})
	w.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	waitRun(t, runs)
	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_NoPaths(t *testing.T) {
	err := New(nil, func(context.Context) error { return nil }).Watch(context.Background())
	assert.Error(t, err)
}

func TestWatch_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "video.info.json")
	err := New([]string{missing}, func(context.Context) error { return nil }).Watch(context.Background())
	assert.Error(t, err)
}

func waitRun(t *testing.T, runs <-chan struct{}) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rebuild")
	}
}
