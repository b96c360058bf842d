// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutPath} {
		var buf bytes.Buffer
		require.NoError(t, Write(context.Background(), path, &buf, []byte("<rss/>\n")))
		assert.Equal(t, "<rss/>\n", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWrite_StdoutError(t *testing.T) {
	err := Write(context.Background(), "", failingWriter{}, []byte("x"))
	assert.ErrorContains(t, err, "broken pipe")
}

func TestWrite_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.xml")

	require.NoError(t, Write(context.Background(), path, nil, []byte("first")))
	require.NoError(t, Write(context.Background(), path, nil, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWrite_MissingDirectoryLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "feed.xml")

	err := Write(context.Background(), path, nil, []byte("data"))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIsStdout(t *testing.T) {
	assert.True(t, IsStdout(""))
	assert.True(t, IsStdout("-"))
	assert.False(t, IsStdout("feed.xml"))
}
