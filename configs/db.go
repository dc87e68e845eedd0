package configs

import (
	"context"
	"fmt"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository/mongostore"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenStore connects the backend named by cfg.DBDriver and prepares its schema.
func OpenStore(ctx context.Context, cfg *Config, log *zap.Logger) (repository.Store, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.DBSource, err)
		}
		if err := repository.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info("database ready", zap.String("driver", "sqlite"), zap.String("source", cfg.DBSource))
		return repository.NewGormStore(db), nil

	case "mongo":
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		st, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := st.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info("database ready", zap.String("driver", "mongo"), zap.String("database", cfg.MongoDatabase))
		return st, nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}
