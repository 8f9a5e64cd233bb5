package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"product-copy/internal/app"
	"product-copy/internal/httputil"
	"product-copy/internal/product"
)

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Log.Info("gateway listening", "addr", srv.Addr, "generator", deps.Generator.Strategy().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Shut down on signal or when the listener fails
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("gateway stopped")
}

func newRouter(deps app.Deps) *chi.Mux {
	r := httputil.NewRouter(deps.Log, httputil.RouterOptions{
		Timeout:        deps.Config.RequestTimeout,
		AllowedOrigins: deps.Config.AllowedOrigins,
	})

	r.Get("/", rootHandler())
	r.Post("/generate", generateHandler(deps))
	r.Post("/suggest_audiences", suggestAudiencesHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps))
	return r
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Product Generator API is running",
		})
	}
}

func generateHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req product.ProductRequest
		if !httputil.DecodeJSON(deps.Log, w, r, &req) {
			return
		}
		httputil.WriteJSON(w, http.StatusOK, deps.Generator.Generate(r.Context(), req))
	}
}

func suggestAudiencesHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req product.AudienceRequest
		if !httputil.DecodeJSON(deps.Log, w, r, &req) {
			return
		}
		httputil.WriteJSON(w, http.StatusOK, deps.Suggester.Suggest(r.Context(), req))
	}
}
