package db

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database once at startup. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey and can be
// mapped to Conflict responses instead of opaque driver errors.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate runs the schema migration for the full model set. Handlers assume a
// fully-migrated schema; nothing probes for columns at request time.
func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Card{},
		&models.Friendship{},
		&models.Comment{},
		&models.Reaction{},
		&models.Group{},
		&models.GroupMembership{},
		&models.GroupComment{},
		&models.GroupCommentReaction{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
