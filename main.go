package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sr-ssh/vue-table.api/config"
	"github.com/sr-ssh/vue-table.api/data"
	"github.com/sr-ssh/vue-table.api/data/repos"
	"github.com/sr-ssh/vue-table.api/handlers"
	"github.com/sr-ssh/vue-table.api/metrics"
)

func main() {
	config.LoadConfig()

	logger := slog.New(config.Config.LogHandler(os.Stdout))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, data.Migrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	usersRepo := repos.NewUserRepo(db)
	users := handlers.NewUserHandler(usersRepo, config.Config.DefaultSearchType)
	search := handlers.NewSearchHandler(config.Config.DefaultSearchType)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", public(users.GetUsers))
	mux.HandleFunc("GET /users/{id}", public(users.GetUser))
	mux.HandleFunc("POST /users", public(users.CreateUser))
	mux.HandleFunc("PUT /users/{id}", public(users.UpdateUser))
	mux.HandleFunc("DELETE /users/{id}", public(users.DeleteUser))

	mux.HandleFunc("GET /search-types", public(search.GetSearchTypes))

	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + config.Config.Port,
		Handler:           metrics.Middleware(withCORS(mux, config.Config.CORSOrigin)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("Starting server", "port", config.Config.Port, "defaultSearchType", config.Config.DefaultSearchType)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("failed to start server", "error", err)
	}

	if err := db.Close(); err != nil {
		slog.Error("failed to close database connection", "error", err)
	}
}

func withCORS(next http.Handler, origin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "id", reqID, "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		if err := res.Respond(w); err != nil {
			slog.Error("failed to encode response", "id", reqID, "error", err)
		}
		if res.IsInternal() {
			slog.Error("internal error", "id", reqID, "path", r.URL.Path, "error", res.Error)
		}
	}
}
