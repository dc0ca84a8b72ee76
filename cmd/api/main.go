// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nebulahq/tessera/internal/auth"
	"github.com/nebulahq/tessera/internal/config"
	"github.com/nebulahq/tessera/internal/email"
	"github.com/nebulahq/tessera/internal/handler"
	"github.com/nebulahq/tessera/internal/middleware"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
	"github.com/nebulahq/tessera/internal/service"
	"github.com/nebulahq/tessera/internal/tenant"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Public-schema database (organisations, system admins)
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Tenant session pool: shared, bounded, borrowed per request
	tenantPool, err := setupTenantPool(cfg)
	if err != nil {
		return fmt.Errorf("setting up tenant pool: %w", err)
	}
	defer tenantPool.Close()
	sessions := tenant.NewSessionPool(tenantPool, cfg.TenantPool.StatementTimeout, logger)

	// Schema provisioner; connects on its own, outside the request pool
	provisioner := tenant.NewProvisioner(cfg.TenantPoolURL(), logger)

	// Repositories
	orgRepo := repository.NewOrganisationRepository(db)
	adminRepo := repository.NewSystemAdminRepository(db)
	userRepo := repository.NewTenantUserRepository()
	linkRepo := repository.NewMagicLinkRepository()
	invitationRepo := repository.NewInvitationRepository()

	// Auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Domain services
	orgService := service.NewOrganisationService(orgRepo, provisioner, logger)
	adminService := service.NewSystemAdminService(adminRepo, passwordHasher, tokenManager)
	userService := service.NewTenantUserService(userRepo)
	magicLinkService := service.NewMagicLinkService(linkRepo, userRepo, tokenManager, emailService, cfg, logger)
	invitationService := service.NewInvitationService(invitationRepo, userRepo, emailService, cfg, logger)

	// Handlers
	orgHandler := handler.NewOrganisationHandler(orgService)
	authHandler := handler.NewAuthHandler(magicLinkService, adminService)
	userHandler := handler.NewTenantUserHandler(userService, invitationService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.TenantDomainHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	resolveTenant := middleware.TenantResolver(orgRepo, sessions, cfg.Resolver.Timeout)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Magic-link auth; tenant comes from the X-Tenant-Domain header
		r.Route("/auth", func(r chi.Router) {
			r.Use(resolveTenant)
			r.Get("/magic-link/verify", authHandler.VerifyMagicLink)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				r.Post("/magic-link", authHandler.RequestMagicLink)
			})
		})

		// Administrative routes; public schema only, no tenant context
		r.Route("/admin", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/login", authHandler.AdminLogin)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(tokenManager))

				r.Route("/organisations", func(r chi.Router) {
					r.Get("/", orgHandler.List)
					r.Post("/", orgHandler.Create)
					r.Get("/{id}", orgHandler.Get)
					r.Put("/{id}", orgHandler.Update)
					r.Delete("/{id}", orgHandler.Delete)
					r.Post("/{id}/restore", orgHandler.Restore)
					r.Post("/{id}/provision", orgHandler.Provision)
				})
			})
		})

		// Tenant-scoped routes; every handler runs on the pinned session
		r.Group(func(r chi.Router) {
			r.Use(resolveTenant)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(chimw.AllowContentType("application/json"))
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
				})
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/invitations", func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				r.Post("/", userHandler.Invite)
				r.Post("/accept", userHandler.AcceptInvitation)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxLifetime)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Public-schema tables only; tenant tables are owned by the provisioner
	if err := db.AutoMigrate(&model.Organisation{}, &model.SystemAdmin{}); err != nil {
		return nil, fmt.Errorf("migrating public schema: %w", err)
	}

	return db, nil
}

func setupTenantPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.TenantPoolURL())
	if err != nil {
		return nil, fmt.Errorf("parsing tenant pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating tenant pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging tenant pool: %w", err)
	}

	return pool, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
