package cmd

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	kvmigrations "github.com/klwxsrx/school-admin/data/sql/kv"
	"github.com/klwxsrx/school-admin/pkg/env"
	"github.com/klwxsrx/school-admin/pkg/kv"
	"github.com/klwxsrx/school-admin/pkg/lazy"
	pkgredis "github.com/klwxsrx/school-admin/pkg/redis"
	"github.com/klwxsrx/school-admin/pkg/sql"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQL    = "sql"

	redisKeyPrefix = "school-admin:"
)

func kvStoreProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
	redisClient lazy.Loader[*redis.Client],
) lazy.Loader[kv.Store] {
	return lazy.New(func() (kv.Store, error) {
		storage := env.Must(env.ParseWithDefault("SESSION_STORAGE", StorageMemory))
		switch storage {
		case StorageMemory:
			return kv.NewMemoryStore(), nil
		case StorageRedis:
			ttl := env.Must(env.ParseWithDefault[time.Duration]("SESSION_TTL", 0))
			return pkgredis.NewStore(redisClient.MustLoad(), redisKeyPrefix, ttl), nil
		case StorageSQL:
			dbMigrations.MustLoad().MustRegister(kvmigrations.Migrations)
			return sql.NewKVStore(db.MustLoad()), nil
		default:
			return nil, fmt.Errorf("unknown session storage %q", storage)
		}
	})
}
