package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/bundlestats/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// WorkCmd runs the push queue worker
type WorkCmd struct {
	MetricsAddr string `help:"Serve /metrics and /health on this address (empty = disabled)" env:"BUNDLESTATS_METRICS_ADDR"`
	Once        bool   `help:"Process the pending pushes once and exit"`
}

// queueRunner is the part of the worker the command drives
type queueRunner interface {
	Run(ctx context.Context) error
	RunOnce(ctx context.Context) (int, error)
}

// Run executes the work command until SIGINT/SIGTERM
func (w *WorkCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		applyString(&w.MetricsAddr, "", "BUNDLESTATS_METRICS_ADDR", cli.settings.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsHandler http.Handler
	if w.MetricsAddr != "" {
		metricsHandler = cli.Container.Observer.Handler()
	}
	return runWorker(ctx, cli.Container.Worker, w.Once, w.MetricsAddr, metricsHandler)
}

// runWorker runs the worker and, when addr is set, the metrics server next to it.
// The server is shut down once the worker returns.
func runWorker(ctx context.Context, worker queueRunner, once bool, addr string, handler http.Handler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if addr != "" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		server := &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		logging.Logger.Info("Serving metrics", "addr", ln.Addr().String())

		g.Go(func() error {
			if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			return server.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		if once {
			processed, err := worker.RunOnce(gctx)
			if err != nil {
				return err
			}
			logging.Logger.Info("Single pass finished", "processed", processed)
			return nil
		}
		return worker.Run(gctx)
	})

	return g.Wait()
}
