package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vedran77/quill/internal/config"
	"github.com/vedran77/quill/internal/database"
	"github.com/vedran77/quill/internal/identity"
	"github.com/vedran77/quill/internal/repository"
	"github.com/vedran77/quill/internal/repository/memory"
	postgresrepo "github.com/vedran77/quill/internal/repository/postgres"
	sqliterepo "github.com/vedran77/quill/internal/repository/sqlite"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/internal/transport/http/handlers"
	"github.com/vedran77/quill/internal/transport/http/middleware"
	"github.com/vedran77/quill/internal/transport/ws"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type repos struct {
	users   repository.UserRepository
	posts   repository.PostRepository
	ratings repository.RatingRepository
	close   func() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(newLogger(cfg, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()
	slog.Info("store ready", "driver", cfg.StoreDriver)

	// Realtime
	hub := ws.NewHub()
	notifier := ws.NewHubNotifier(hub)

	// Services
	issuer := identity.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	identityService := service.NewIdentityService(issuer)
	profileService := service.NewProfileService(store.users)
	postService := service.NewPostService(store.posts, notifier)
	ratingService := service.NewRatingService(store.ratings, store.posts, notifier)

	// Routes
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	mux := http.NewServeMux()
	handlers.Register(mux, handlers.Handlers{
		Identity: handlers.NewIdentityHandler(identityService),
		Profile:  handlers.NewProfileHandler(profileService, postService),
		Post:     handlers.NewPostHandler(postService),
		Rating:   handlers.NewRatingHandler(ratingService),
	}, middleware.Auth(issuer))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, issuer, cfg.AllowedOrigin))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           metrics.Wrap(middleware.CORS(cfg.AllowedOrigin)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		slog.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (*repos, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.MigrateOnStart {
			if err := database.Migrate(cfg.PostgresDSN()); err != nil {
				return nil, err
			}
		}
		pool, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &repos{
			users:   postgresrepo.NewUserRepo(pool),
			posts:   postgresrepo.NewPostRepo(pool),
			ratings: postgresrepo.NewRatingRepo(pool),
			close:   func() error { pool.Close(); return nil },
		}, nil

	case config.StoreSQLite:
		db, err := sqliterepo.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &repos{
			users:   sqliterepo.NewUserRepo(db),
			posts:   sqliterepo.NewPostRepo(db),
			ratings: sqliterepo.NewRatingRepo(db),
			close:   db.Close,
		}, nil

	default:
		s := memory.NewStore()
		return &repos{
			users:   memory.NewUserRepo(s),
			posts:   memory.NewPostRepo(s),
			ratings: memory.NewRatingRepo(s),
			close:   func() error { return nil },
		}, nil
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
