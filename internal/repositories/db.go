package repositories

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wedding-app/server/internal/models"
)

// ConnectDatabase opens Postgres when dsn is set and a local sqlite file otherwise,
// then runs migrations.
func ConnectDatabase(dsn, sqlitePath string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		log.Warn().Str("path", sqlitePath).Msg("DB_URL not set, falling back to sqlite")
		dialector = sqlite.Open(SQLiteDSN(sqlitePath))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info().Str("dialect", db.Dialector.Name()).Msg("Successfully connected to database")
	return db, nil
}

// SQLiteDSN enables foreign keys so cascade rules hold on sqlite too.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Guest{},
		&models.Gift{},
		&models.Wish{},
		&models.GalleryItem{},
		&models.UploadedFile{},
		&models.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
