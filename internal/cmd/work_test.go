package cmd

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueueRunner struct {
	onceCalls int
	runCalls  int
	onceErr   error
	block     bool
}

func (f *fakeQueueRunner) Run(ctx context.Context) error {
	f.runCalls++
	if f.block {
		<-ctx.Done()
	}
	return nil
}

func (f *fakeQueueRunner) RunOnce(ctx context.Context) (int, error) {
	f.onceCalls++
	return 2, f.onceErr
}

func TestRunWorker_Once(t *testing.T) {
	worker := &fakeQueueRunner{}

	err := runWorker(context.Background(), worker, true, "", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, worker.onceCalls)
	assert.Equal(t, 0, worker.runCalls)
}

func TestRunWorker_OnceErrorPropagates(t *testing.T) {
	worker := &fakeQueueRunner{onceErr: errors.New("db down")}

	err := runWorker(context.Background(), worker, true, "", nil)

	assert.EqualError(t, err, "db down")
}

func TestRunWorker_StopsOnCancel(t *testing.T) {
	worker := &fakeQueueRunner{block: true}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := runWorker(ctx, worker, false, "", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, worker.runCalls)
}

func TestRunWorker_ServesMetricsUntilWorkerStops(t *testing.T) {
	// Reserve a free port, then hand it to the worker
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	worker := &fakeQueueRunner{block: true}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runWorker(ctx, worker, false, addr, handler) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRunWorker_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	worker := &fakeQueueRunner{}
	err = runWorker(context.Background(), worker, true, ln.Addr().String(), http.NotFoundHandler())

	assert.ErrorContains(t, err, "failed to listen")
	assert.Equal(t, 0, worker.onceCalls)
}
