package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "conduit/docs" // swagger docs
	"conduit/internal/config"
	hhttp "conduit/internal/handler/http"
	harticle "conduit/internal/handler/http/article"
	hauth "conduit/internal/handler/http/auth"
	hcomment "conduit/internal/handler/http/comment"
	"conduit/internal/handler/http/middleware"
	hprofile "conduit/internal/handler/http/profile"
	"conduit/internal/handler/http/requestid"
	htag "conduit/internal/handler/http/tag"
	huser "conduit/internal/handler/http/user"
	pgRepo "conduit/internal/infra/adapter/persistence/postgres"
	"conduit/internal/infra/db"
	"conduit/internal/infra/mailer"
	"conduit/internal/observability/logging"
	"conduit/internal/observability/tracing"
	"conduit/internal/resilience/circuitbreaker"
	authservice "conduit/internal/service/auth"
	artUC "conduit/internal/usecase/article"
	commentUC "conduit/internal/usecase/comment"
	feedUC "conduit/internal/usecase/feed"
	socialUC "conduit/internal/usecase/social"
	userUC "conduit/internal/usecase/user"
	pkgconfig "conduit/pkg/config"
)

// @title           Conduit API
// @version         1.0
// @description     RealWorld-style social blogging API: articles, personal
// @description     feeds, full-text search, profiles, comments and tags.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token, supplied as "Bearer {token}".

func main() {
	// Missing .env is fine; containers pass real environment variables.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateJWTSecret(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	tp := tracing.Init()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg, database)

	runServer(logger, cfg, components)
}

// validateJWTSecret refuses to start with a missing or weak JWT_SECRET.
func validateJWTSecret(logger *slog.Logger) {
	if err := authservice.ValidateJWTSecret(); err != nil {
		logger.Error("jwt secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// ServerComponents holds what the running server needs for operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	AuthLimiter *middleware.IPRateLimiter
	RateLimit   pkgconfig.RateLimitConfig
}

// setupServer wires repositories into usecases, usecases into handlers, and
// returns the fully assembled HTTP handler.
func setupServer(logger *slog.Logger, cfg config.Config, database *sql.DB) *ServerComponents {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	articleRepo := pgRepo.NewArticleRepo(database)
	userRepo := pgRepo.NewUserRepo(database)
	socialRepo := pgRepo.NewSocialRepo(database)

	tokens := authservice.NewTokenService([]byte(os.Getenv("JWT_SECRET")))

	feedSvc := &feedUC.Service{
		Articles: articleRepo,
		Search:   pgRepo.NewSearchRepo(database),
	}
	articleSvc := &artUC.Service{Repo: articleRepo}
	socialSvc := &socialUC.Service{
		Social:   socialRepo,
		Articles: articleRepo,
		Users:    userRepo,
	}
	commentSvc := &commentUC.Service{
		Comments: pgRepo.NewCommentRepo(database),
		Articles: articleRepo,
	}
	var mail mailer.Mailer = mailer.NewLogMailer(logger)
	if pkgconfig.GetEnvString("MAILER_DRIVER", "log") == "noop" {
		mail = mailer.NewNoopMailer()
	}
	userSvc := &userUC.Service{
		Users:  userRepo,
		Tokens: tokens,
		Mailer: mail,
		Logger: logger,
	}

	rateLimitCfg := pkgconfig.LoadRateLimitConfig()
	var authLimiter *middleware.IPRateLimiter
	limit := func(next http.Handler) http.Handler { return next }
	if rateLimitCfg.Enabled {
		authLimiter = middleware.NewIPRateLimiter(rateLimitCfg.RPS, rateLimitCfg.Burst)
		limit = authLimiter.Middleware
		logger.Info("auth rate limiting enabled",
			slog.Float64("rps", rateLimitCfg.RPS),
			slog.Int("burst", rateLimitCfg.Burst))
	} else {
		logger.Warn("auth rate limiting disabled")
	}

	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database, Breaker: breaker})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, feedSvc, articleSvc, socialSvc, logger)
	hprofile.Register(mux, socialSvc)
	hcomment.Register(mux, commentSvc)
	htag.Register(mux, pgRepo.NewTagRepo(database))
	huser.Register(mux, userSvc, limit)

	return &ServerComponents{
		Handler:     applyMiddleware(logger, cfg, tokens, mux),
		AuthLimiter: authLimiter,
		RateLimit:   rateLimitCfg,
	}
}

// applyMiddleware wraps the mux with the shared middleware chain.
// Order, outermost first: CORS → Request ID → Recovery → Logging →
// Body Limit → Security Headers → Tracing → Metrics → Authn → Timeout.
func applyMiddleware(logger *slog.Logger, cfg config.Config, tokens *authservice.TokenService, handler http.Handler) http.Handler {
	corsCfg := middleware.LoadCORSConfig()
	logger.Info("CORS configured",
		slog.Int("allowed_origins_count", len(corsCfg.AllowedOrigins)),
		slog.Any("allowed_origins", corsCfg.AllowedOrigins))

	chain := handler

	// Applied in reverse order, innermost first.
	chain = hhttp.WithTimeout(cfg.Server.RequestTimeout)(chain)
	chain = hauth.Authn(tokens)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = middleware.SecurityHeaders(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsCfg)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg config.Config, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.AuthLimiter != nil {
		go func() {
			ticker := time.NewTicker(components.RateLimit.CleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					components.AuthLimiter.Cleanup(components.RateLimit.MaxIdle)
				}
			}
		}()
		logger.Info("auth rate limit cleanup started",
			slog.Duration("interval", components.RateLimit.CleanupInterval),
			slog.Duration("max_idle", components.RateLimit.MaxIdle))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
