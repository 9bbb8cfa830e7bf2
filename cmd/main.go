package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/mama165/sdk-go/logs"

	"github.com/Vovarama1992/baza-barbershop/internal/ai"
	"github.com/Vovarama1992/baza-barbershop/internal/assistant"
	"github.com/Vovarama1992/baza-barbershop/internal/booking"
	"github.com/Vovarama1992/baza-barbershop/internal/chat"
	"github.com/Vovarama1992/baza-barbershop/internal/config"
	"github.com/Vovarama1992/baza-barbershop/internal/faq"
	"github.com/Vovarama1992/baza-barbershop/internal/site"
	"github.com/Vovarama1992/baza-barbershop/internal/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stats ---
	statsRepo, closeDB, err := openStats(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Assistant (remote chat endpoint) ---
	if cfg.OpenAIKey != "" {
		aiClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, log)
		assistantService := assistant.NewService(aiClient, cfg.ChatTimeout, log)
		assistant.RegisterRoutes(r, assistant.NewHandler(assistantService, log))
	} else {
		log.Warn("OPENAI_API_KEY not set, /api/chat disabled")
	}

	// --- Chat widget ---
	resolver := chat.NewResolver(
		faq.Default(),
		chat.NewHTTPRemote(cfg.ChatEndpoint, cfg.ChatTimeout),
		faq.SiteContext,
		log,
		chat.WithTypingDelay(cfg.TypingDelay),
		chat.WithRecorder(statsRepo),
	)
	sessions := chat.NewSessions(resolver, log, chat.WithSessionTTL(cfg.SessionTTL))
	go sessions.Run(ctx)
	chat.RegisterRoutes(r, chat.NewHandler(sessions, log))

	// --- Booking ---
	if cfg.Web3FormsAccessKey == "" {
		log.Warn("WEB3FORMS_ACCESS_KEY not set, bookings will be refused by the relay")
	}
	relay := booking.NewWeb3FormsRelay(cfg.Web3FormsURL, cfg.Web3FormsAccessKey, cfg.RelayTimeout)
	booking.RegisterRoutes(r, booking.NewHandler(relay, log))

	// --- Site + stats ---
	site.RegisterRoutes(r, site.NewHandler(site.Default()))
	stats.RegisterRoutes(r, stats.NewHandler(statsRepo, log))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStats: Postgres при заданном DATABASE_URL, иначе память.
func openStats(ctx context.Context, cfg *config.Config, log *slog.Logger) (stats.Repo, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL not set, stats kept in memory")
		return stats.NewMemoryRepo(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	repo := stats.NewRepo(db)
	if err := repo.EnsureSchema(pingCtx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repo, func() {
		log.Info("closing database")
		_ = db.Close()
	}, nil
}
