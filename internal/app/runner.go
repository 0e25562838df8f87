package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/dig"

	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/metrics"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/parcel"
)

const (
	serviceName     = "service-parcels"
	shutdownTimeout = 15 * time.Second
)

// Runner runs the HTTP servers
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP servers using the provided DI container and blocks until shutdown.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	var logger logx.Logger = logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		panic(fmt.Sprintf("run error: %v", err))
	}
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server" optional:"true"`
	Parcels  *parcel.Service
	Metrics  *metrics.ParcelMetrics
	Interval statsInterval
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "http", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof", errCh)
	}
	startStatsLoop(in.Ctx, in.Logger, in.Parcels, in.Metrics, time.Duration(in.Interval))

	var err error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down " + serviceName)
		err = in.Ctx.Err()
	case err = <-errCh:
		in.Logger.Error("server failed", logx.Err(err))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	if syncErr := in.Logger.Sync(); syncErr != nil {
		err = errors.Join(err, syncErr)
	}
	return err
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info(serviceName+" listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}
