// Package app assembles the storefront and weather services.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"shopfront/config"
	"shopfront/internal/delivery/http/middleware"
	"shopfront/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// App is one HTTP service with its background workers.
type App struct {
	Name    string
	Server  *http.Server
	limiter *middleware.RateLimiter
}

func newApp(name, port string, cfg *config.Config, mux *http.ServeMux) (*App, error) {
	mux.HandleFunc("GET /health", healthHandler)

	// 1 minute cleanup, 3 minute client TTL
	limiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)
	if err := limiter.TrustProxies(cfg.TrustedProxies); err != nil {
		limiter.Shutdown()
		return nil, err
	}

	// Session and CORS innermost, gzip outermost.
	handler := middleware.SessionMiddleware(cfg.SessionTTL)(mux)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.RequestLogger(handler)
	handler = limiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	return &App{
		Name:    name,
		limiter: limiter,
		Server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.ServiceStart(a.Name, a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.limiter.Shutdown()
		if err != nil {
			return fmt.Errorf("%s server failed: %w", a.Name, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Get().Info().Str("service", a.Name).Msg("Server shutting down...")
	a.limiter.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s server forced to shutdown: %w", a.Name, err)
	}
	logger.ServiceStop(a.Name)
	return nil
}

// Close stops background workers without serving. Used when an App is
// built but never run.
func (a *App) Close() {
	a.limiter.Shutdown()
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
