package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/logging"
	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/email"
	"github.com/veridia/identity/internal/server/redis"
	"github.com/veridia/identity/metrics"
)

type Options struct {
	// SessionDuration is the lifetime of session tokens issued by login.
	SessionDuration time.Duration

	// PasswordResetDuration is the validity window of reset credentials.
	// Both the signed token and the active-set row use this window.
	PasswordResetDuration time.Duration

	DBFile             string
	DBConnectionString string

	// Redis contains configuration options for the cache server used to
	// rate limit recovery requests and lock out failed logins.
	Redis redis.Options

	Email EmailOptions

	Addr ListenerOptions
}

type ListenerOptions struct {
	HTTP    string
	Metrics string
}

type EmailOptions struct {
	AppDomain      string
	FromAddress    string
	FromName       string
	SendgridAPIKey string
}

type Server struct {
	options         Options
	db              *gorm.DB
	redis           *redis.Redis
	metricsRegistry *prometheus.Registry
}

// New creates a Server and initializes its dependencies. The returned
// Server is ready to run.
func New(options Options) (*Server, error) {
	driver, err := databaseDriver(options)
	if err != nil {
		return nil, err
	}

	db, err := data.NewDB(driver)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}

	server := &Server{
		options:         options,
		db:              db,
		redis:           redis.NewRedis(options.Redis),
		metricsRegistry: prometheus.NewRegistry(),
	}

	configureEmail(options)

	return server, nil
}

func databaseDriver(options Options) (gorm.Dialector, error) {
	if options.DBConnectionString != "" {
		return data.NewPostgresDriver(options.DBConnectionString)
	}
	return data.NewSQLiteDriver(options.DBFile)
}

func configureEmail(options Options) {
	if len(options.Email.AppDomain) > 0 {
		email.AppDomain = options.Email.AppDomain
	}
	if len(options.Email.FromAddress) > 0 {
		email.FromAddress = options.Email.FromAddress
	}
	if len(options.Email.FromName) > 0 {
		email.FromName = options.Email.FromName
	}
	if len(options.Email.SendgridAPIKey) > 0 {
		email.SendgridAPIKey = options.Email.SendgridAPIKey
	}
}

// DB returns the database connection pool used by the server. It is
// primarily used by tests to create fixture data.
func (s *Server) DB() *gorm.DB {
	return s.db
}

func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	s.startCleanupJob(ctx)

	router := s.GenerateRoutes(s.metricsRegistry)

	httpErrorLog := logging.StandardErrorLog()
	httpServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.HTTP,
		Handler:           router,
		ErrorLog:          httpErrorLog,
	}
	metricsServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.Metrics,
		Handler:           metrics.NewHandler(s.metricsRegistry),
		ErrorLog:          httpErrorLog,
	}

	group.Go(func() error {
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		err := metricsServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warnf("metrics server shutdown: %s", err)
		}
		return httpServer.Shutdown(shutdownCtx)
	})

	logging.Infof("starting identity server (%s) - http:%s metrics:%s",
		internal.FullVersion(), s.options.Addr.HTTP, s.options.Addr.Metrics)

	err := group.Wait()

	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logging.Warnf("failed to close database connection: %s", closeErr)
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
