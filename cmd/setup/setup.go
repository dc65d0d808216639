package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/aggregator"
	"github.com/unionconnect/go-wallet-admin/internal/common/cache"
	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	"github.com/unionconnect/go-wallet-admin/internal/common/idgenerator"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	cMetrics "github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/common/publisher"
	"github.com/unionconnect/go-wallet-admin/internal/common/retry"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/deliveries/http/health"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/repositories"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
)

const saramaMetricsFlushInterval = 10 * time.Second

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	WriteDB  *sql.DB
	ReadDB   *sql.DB
	Cache    *redis.Client
	SQLRepo  repositories.SQLRepository
	Feed     repositories.FeedRepository
	Session  *aggregator.Session
	Service  *services.Services
	Retryer  retry.Retryer
	Metrics  cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
	)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.InfoLogLevel()
	if config.StringToEnvironment(cfg.App.Env).DebugLogging() {
		logLevel = xlog.DebugLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cMetrics.FlattenName(cfg.App.Name+"-"+command+"-write"), cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cMetrics.FlattenName(cfg.App.Name+"-"+command+"-read"), cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	principalCache, redisClient, closeCache, err := setupPrincipalCache(ctx, cfg, command, mtc)
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return closeCache() })

	loanDecisionPub, closeProducer, err := setupLoanDecisionPublisher(cfg, command, mtc)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	if closeProducer != nil {
		stopper = append(stopper, func(ctx context.Context) error { return closeProducer() })
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	feedRepo := repositories.NewFeedRepository(sqlRepo, repositories.NewPQListenerFactory(
		cfg.Postgres.Write.DSN(),
		cfg.Aggregator.MinReconnectInterval,
		cfg.Aggregator.MaxReconnectInterval,
	))

	session := aggregator.NewSession(feedRepo, cfg.Aggregator.TransactionWindow,
		aggregator.WithMetrics(mtc.GetAggregatorPrometheus()),
	)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		session,
		idgenerator.New(),
		loanDecisionPub,
		principalCache,
		mtc,
	)

	return &Setup{
		Config:   cfg,
		NewRelic: newRelic,
		WriteDB:  writeDB,
		ReadDB:   readDB,
		Cache:    redisClient,
		SQLRepo:  sqlRepo,
		Feed:     feedRepo,
		Session:  session,
		Service:  srv,
		Retryer:  retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		Metrics:  mtc,
	}, stopper, nil
}

// HealthChecks are the dependencies probed by the readiness endpoint.
func (s *Setup) HealthChecks() map[string]health.Check {
	checks := map[string]health.Check{
		"postgres_write": s.WriteDB.PingContext,
		"postgres_read":  s.ReadDB.PingContext,
	}
	if s.Cache != nil {
		checks["redis"] = func(ctx context.Context) error { return s.Cache.Ping(ctx).Err() }
	}
	return checks
}

// setupPrincipalCache falls back to a process local cache when no Redis host
// is configured.
func setupPrincipalCache(ctx context.Context, cfg config.Config, command string, mtc cMetrics.Metrics) (
	cache.Client[models.Principal], *redis.Client, func() error, error,
) {
	if cfg.Redis.Host == "" {
		xlog.Warn(ctx, "[SETUP] redis host is empty, principal cache is process local")
		inMemory := cache.NewInMemoryClient[models.Principal]()
		return inMemory, nil, func() error { inMemory.Close(); return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, nil, nil, fmt.Errorf("failed connect to redis: %w", err)
	}

	// register redis prometheus metrics
	if err := mtc.RegisterRedis(client, cfg.App.Name, command); err != nil {
		client.Close()
		return nil, nil, nil, fmt.Errorf("failed register redis prometheus: %w", err)
	}

	return cache.NewRedisClient[models.Principal](client, cMetrics.FlattenName(cfg.App.Name)+":"), client, client.Close, nil
}

// setupLoanDecisionPublisher returns a nil publisher when no broker is
// configured or publishing is disabled.
func setupLoanDecisionPublisher(cfg config.Config, command string, mtc cMetrics.Metrics) (publisher.Publisher, func() error, error) {
	if !cfg.FeatureFlag.EnablePublishLoanDecision || len(cfg.MessageBroker.Brokers) == 0 {
		return nil, nil, nil
	}

	producer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.Brokers,
		publisher.WithClientID(cfg.App.Name+"-"+command),
		publisher.WithTimeout(cfg.MessageBroker.Timeout),
		publisher.WithMetricRegistry(mtc.SaramaRegistry("kafka_producer_"+command, saramaMetricsFlushInterval)),
	)
	if err != nil {
		return nil, nil, err
	}

	pub := publisher.NewPublisher(producer, cfg.MessageBroker.TopicLoanDecision, mtc.GetPublisherPrometheus())
	return pub, producer.Close, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		writeDB.Close()
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	db, err := sql.Open("postgres", pgConf.DSN())
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelicLicenseKey == "" || !config.IsProduction(cfg.App.Env) {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
