package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abx-network/agora/internal/certificate"
	"github.com/abx-network/agora/internal/funds"
	"github.com/abx-network/agora/internal/health"
	"github.com/abx-network/agora/internal/logging"
	"github.com/abx-network/agora/internal/metrics"
	"github.com/abx-network/agora/internal/server"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/service/impl"
	"github.com/abx-network/agora/internal/storage"
	"github.com/abx-network/agora/internal/storage/memory"
	"github.com/abx-network/agora/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Storage string `long:"storage" env:"STORAGE" default:"postgres" description:"storage backend" choice:"memory" choice:"postgres"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	PlatformOwner             string `long:"platform.owner" env:"PLATFORM_OWNER" required:"true" description:"platform owner address, receives native funds"`
	PlatformCreationThreshold uint64 `long:"platform.creation_threshold" env:"PLATFORM_CREATION_THRESHOLD" default:"1000" description:"ABX balance required to create a community"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Agora"
	parser.LongDescription = "Agora community ledger"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := logging.NewSentryHook(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "agora",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
		defer hook.Flush(2 * time.Second)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	var (
		s       storage.Storage
		pingers []health.Pinger
	)

	switch opts.Storage {
	case "memory":
		logrus.Warn("memory storage is used, state will be lost on exit")
		s = memory.New()
	default:
		db := mustGetDB()
		defer db.Close() // nolint:errcheck

		s = postgres.New(db)
		pingers = append(pingers, health.SubjectPinger("postgres", db.PingContext))
	}

	issuer := certificate.NewRegistry(s, clock.New())
	srv := impl.New(s, clock.New(), funds.Ledger{}, issuer, impl.Config{
		Owner:             opts.PlatformOwner,
		CreationThreshold: opts.PlatformCreationThreshold,
	})

	pingers = append(pingers, health.MetaPinger("ledger", statsPinger(srv)))

	r := chi.NewMux()
	r.Get("/health", health.Handler(5*time.Second, pingers...))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	server.SetupRouter(srv, issuer, r, opts.RequestTimeout)

	httpSrv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(context.Background())
	gr.Go(httpSrv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func statsPinger(s service.Service) func(ctx context.Context) (interface{}, error) {
	return func(ctx context.Context) (interface{}, error) {
		stats, err := s.GetStats(ctx)
		if err != nil {
			return nil, err
		}

		return map[string]uint64{
			"communities": stats.Communities,
			"accounts":    stats.Accounts,
		}, nil
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
