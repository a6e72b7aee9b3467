package postgres

import (
	"context"

	"helppro/internal/errors"
	"helppro/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. PostGIS must be available before the
// vendors table is created, since its location column is a geometry type, and
// the GiST index only makes sense once that column exists.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "create postgis extension")
	}

	if err := tx.AutoMigrate(
		&model.UserModel{},
		&model.VendorAccountModel{},
		&model.VendorProfileModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := tx.Exec(
		"CREATE INDEX IF NOT EXISTS idx_vendors_location ON vendors USING GIST (location)",
	).Error; err != nil {
		return errors.Wrap(err, "create vendors location index")
	}

	return nil
}
