package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/school-admin/pkg/cmd"
	"github.com/klwxsrx/school-admin/pkg/env"
	"github.com/klwxsrx/school-admin/pkg/http"
	"github.com/klwxsrx/school-admin/pkg/kv"
	"github.com/klwxsrx/school-admin/pkg/lazy"
	"github.com/klwxsrx/school-admin/pkg/log"
	"github.com/klwxsrx/school-admin/pkg/metric"
	pkgredis "github.com/klwxsrx/school-admin/pkg/redis"
	"github.com/klwxsrx/school-admin/pkg/sql"
)

const metricsNamespace = "school_admin"

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	KVStore           lazy.Loader[kv.Store]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Redis             lazy.Loader[*redis.Client]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	prometheus := prometheusProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheus.Load() })
	logger := loggerProvider()

	db := sqlDatabaseProvider(ctx, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	redisClient := redisClientProvider(ctx)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(prometheus, logger),
		HTTPClientFactory: httpClientFactoryProvider(metrics, logger),
		KVStore:           kvStoreProvider(db, dbMigrations, redisClient),
		DBMigrations:      dbMigrations,
		DB:                db,
		Redis:             redisClient,
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.LogAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.Redis.IfLoaded(func(client *redis.Client) {
		if err := client.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to close redis connection")
		}
	})
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusProvider() lazy.Loader[*metric.PrometheusMetrics] {
	return lazy.New(func() (*metric.PrometheusMetrics, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		level, err := env.ParseWithDefault("LOG_LEVEL", "info")
		if err != nil {
			return nil, err
		}

		return log.New(log.ParseLevel(level)), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 2)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func redisClientProvider(ctx context.Context) lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		config := &pkgredis.Config{
			URL: env.Must(env.Parse[string]("REDIS_URL")),
		}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		client, err := pkgredis.NewClient(ctx, config)
		if err != nil {
			panic(fmt.Errorf("open redis connection: %w", err))
		}

		return client, nil
	})
}

func httpServerProvider(
	prometheus lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseWithDefault("ADMIN_SERVER_ADDRESS", http.DefaultServerAddress))
		server := http.NewServer(
			address,
			http.WithHealthCheck(),
			http.WithMetrics(prometheus.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		)
		server.RegisterRaw(http.MetricsPath, prometheus.MustLoad().Handler())

		return server, nil
	})
}

func httpClientFactoryProvider(
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithTimeout(env.Must(env.ParseWithDefault("HTTP_CLIENT_TIMEOUT", defaultHTTPClientTimeout))),
			http.WithRequestID(http.DefaultRequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
