package protocal

import (
	"fmt"
	"time"

	"gamelink-finder/configs"
	"gamelink-finder/internal/adapters/output/memory"
	redisAdapter "gamelink-finder/internal/adapters/output/redis"
	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"
	"gamelink-finder/pkg/database_driver/gorm"

	"github.com/sirupsen/logrus"
)

// OpenCatalog connects to the catalog database selected by catalog.driver and migrates it
func OpenCatalog(cfg *configs.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Catalog.Driver {
	case "postgres":
		db, err = gorm.ConnectToPostgreSQL(
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.Username,
			cfg.Postgres.Password,
			cfg.Postgres.DbName,
			cfg.Postgres.SSLMode,
		)
	case "sqlite", "":
		path := cfg.SQLite.Path
		if path == "" {
			path = "./games.db"
		}
		db, err = gorm.ConnectToSQLite(path)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
	if err != nil {
		return nil, err
	}
	domain.MigrateDatabase(db.Catalog)
	return db, nil
}

// NewResultCache builds the result cache selected by cache.driver. The returned func
// releases its resources.
func NewResultCache(cfg *configs.Config) (output.ResultCache, func(), error) {
	switch cfg.Cache.Driver {
	case "redis":
		cache, err := redisAdapter.NewRedisResultCache(redisAdapter.Config{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   cfg.Cache.KeyPrefix,
			TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		return cache, func() {
			if err := cache.Close(); err != nil {
				logrus.Warnf("Failed to close redis cache: %v", err)
			}
		}, nil
	case "memory", "":
		return memory.NewMemoryResultCache(cfg.Cache.MaxEntries), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

// drain blocks until work has no queued jobs left, then runs release in order
func drain(work interface{ Wait() }, release ...func()) {
	logrus.Info("Waiting for queued conversations ...")
	work.Wait()
	for _, f := range release {
		f()
	}
}

// setLogLevel follows app.debug
func setLogLevel(cfg *configs.Config) {
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}
