package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"engage-api/internal/pacing"
)

// Run starts the HTTP server, then blocks until a shutdown signal.
// Lifecycle:
//  1. Map HTTP handlers and routes (initialize wiring)
//  2. Rebuild pacing state from recently posted records
//  3. Start HTTP server
//  4. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers (initializes repositories, usecases, routes)
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Rebuild per-monitor pacing counters so a restart cannot reset
	// daily limits or minimum delays.
	if err := srv.restorePacing(ctx); err != nil {
		srv.logger.Fatalf(ctx, "Failed to restore pacing state: %v", err)
		return err
	}

	// 3. Start HTTP server in background
	go func() {
		if err := srv.gin.Run(fmt.Sprintf("%s:%d", srv.host, srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping engagement service...")

	return nil
}

// restorePacing loads active monitors and recent posted records to rebuild
// the gate's per-monitor lanes after a process restart.
func (srv *HTTPServer) restorePacing(ctx context.Context) error {
	lookback := srv.engageCfg.RestoreLookback
	if lookback <= 0 {
		lookback = 48 * time.Hour
	}

	now := time.Now()

	monitors, err := srv.monitorRepo.ListAllActive(ctx)
	if err != nil {
		return err
	}

	records, err := srv.postedRepo.ListAllSince(ctx, now.Add(-lookback))
	if err != nil {
		return err
	}

	pacing.Restore(srv.gate, monitors, records, now)
	srv.logger.Infof(ctx, "Pacing state restored: %d monitors, %d posted records considered", len(monitors), len(records))

	return nil
}
