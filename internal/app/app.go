package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/comment"
	entityrepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/entity"
	followuprepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/followup"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/seed"
	statsrepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/stats"
	userrepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bizcrm-backend/internal/config"
	"github.com/heartmarshall/bizcrm-backend/internal/service/comment"
	"github.com/heartmarshall/bizcrm-backend/internal/service/entity"
	"github.com/heartmarshall/bizcrm-backend/internal/service/followup"
	"github.com/heartmarshall/bizcrm-backend/internal/service/report"
	"github.com/heartmarshall/bizcrm-backend/internal/service/user"
	"github.com/heartmarshall/bizcrm-backend/internal/transport/middleware"
	"github.com/heartmarshall/bizcrm-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It prepares the database, resolves the
// acting identity and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := Bootstrap(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	users := user.NewService(logger, userrepo.New(pool))

	userID, err := users.ResolveID(ctx, cfg.Identity.Username)
	if err != nil {
		return fmt.Errorf("resolve identity %q: %w", cfg.Identity.Username, err)
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, users, userID, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// Bootstrap connects to the database, applies migrations when enabled and
// seeds the baseline data set on an empty database. The caller owns the pool.
func Bootstrap(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.Database.AutoMigrate {
		results, err := postgres.EnsureSchema(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("schema ensured", slog.Int("applied", len(results)))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Seed.Enabled {
		seeder := seed.New(logger, pool, postgres.NewTxManager(pool), seed.Admin{
			Username: cfg.Seed.AdminUsername,
			Password: cfg.Seed.AdminPassword,
			RealName: cfg.Seed.AdminRealName,
		})
		if _, err := seeder.SeedIfEmpty(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return pool, nil
}

// NewHandler assembles repositories, services and the middleware stack into
// the root HTTP handler. A zero write rate leaves rate limiting off.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	users *user.Service,
	userID int64,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	entitySvc := entity.NewService(logger, entityrepo.New(pool), txm)
	commentSvc := comment.NewService(logger, commentrepo.New(pool))
	followUpSvc := followup.NewService(logger, followuprepo.New(pool))
	reportSvc := report.NewService(logger, statsrepo.New(pool))

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Entity:   rest.NewEntityHandler(entitySvc, logger),
		Comment:  rest.NewCommentHandler(commentSvc, logger),
		FollowUp: rest.NewFollowUpHandler(followUpSvc, logger),
		Stats:    rest.NewStatsHandler(reportSvc, logger),
		Me:       rest.NewMeHandler(users, logger),
	})

	var limit middleware.Middleware
	if cfg.Server.WriteRateLimit > 0 && limiter != nil {
		limit = limiter.LimitWrites(cfg.Server.WriteRateLimit)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Identity(userID),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)
}
