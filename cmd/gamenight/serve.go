package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gravina/gamenight/internal/adapters/http/site"
	service "github.com/gravina/gamenight/internal/app"
	"github.com/gravina/gamenight/internal/config"
	"github.com/gravina/gamenight/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// cmdServe rebuilds the snapshot once, then serves the public directory
// until interrupted. It is a preview of the published files, not an API.
func cmdServe(ctx context.Context, svc *service.Service, cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Addr, "Listen address")
	_ = fs.Parse(args)

	log := logger.Get()

	// Cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Make sure the published snapshot reflects the ledgers before serving.
	if _, err := svc.Rebuild(ctx); err != nil {
		os.Stderr.WriteString("rebuild failed: " + err.Error() + "\n")
		return 1
	}

	mux := http.NewServeMux()
	site.Register(ctx, mux, svc.PublicDir())

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", *addr), logger.String("public_dir", svc.PublicDir()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		return 1
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return 1
	}

	log.Info(ctx, "server stopped")
	return 0
}
