package store

import (
	"context"

	"healthhub/config"
	"healthhub/internal/errors"
	"healthhub/internal/infra/persistence/migrations"
	"healthhub/internal/infra/persistence/model"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Postgres runs the embedded goose
// migrations; SQLite is created from the models with AutoMigrate.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	switch driver {
	case config.DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get sql.DB")
		}

		goose.SetBaseFS(migrations.Migrations)
		if err := goose.SetDialect("postgres"); err != nil {
			return errors.Wrap(err, "goose dialect")
		}
		if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
			return errors.Wrap(err, "run migrations")
		}

		return nil
	case config.DriverSQLite:
		if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return errors.Wrap(err, "auto migrate")
		}

		return nil
	default:
		return errors.Errorf("unsupported database driver: %q", driver)
	}
}
