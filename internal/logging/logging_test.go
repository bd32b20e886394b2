package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	previous := Logger
	t.Cleanup(func() { Logger = previous })
}

func TestInitialize_StderrJSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	closer, err := Initialize(Options{Stderr: &buf})
	require.NoError(t, err)
	assert.Nil(t, closer)

	Component("worker").Info("Polling", "pending", 2)
	Logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "Polling", line["msg"])
	assert.Equal(t, "worker", line["component"])
	assert.EqualValues(t, 2, line["pending"])
}

func TestInitialize_DebugText(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	_, err := Initialize(Options{Debug: true, Format: "text", Stderr: &buf})
	require.NoError(t, err)

	Logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}

func TestInitialize_UnknownFormat(t *testing.T) {
	restoreLogger(t)

	_, err := Initialize(Options{Format: "xml", Stderr: &bytes.Buffer{}})

	assert.Error(t, err)
}

func TestInitialize_File(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "nested", "worker.log")

	closer, err := Initialize(Options{File: path})
	require.NoError(t, err)
	require.NotNil(t, closer)

	Logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestInitialize_DirRotation(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()

	old := time.Now().Add(-time.Hour)
	for _, name := range []string{"a.log", "b.log", "c.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		require.NoError(t, os.Chtimes(path, old, old))
		old = old.Add(time.Minute)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	closer, err := Initialize(Options{Dir: dir, MaxLogFiles: 2})
	require.NoError(t, err)
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 2, "one old log plus the new one")
	assert.NotContains(t, logs, "a.log")
	assert.NotContains(t, logs, "b.log")
	assert.Contains(t, logs, "c.log")
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}
