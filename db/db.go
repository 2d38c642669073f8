package db

import (
	"errors"

	"github.com/sumkai16/E1PersonalRecord/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database and hands the connection back to the
// caller. Persistence functions take the handle (or a transaction derived
// from it) as an explicit argument; there is no package-global instance.
func Connect() (*gorm.DB, error) {
	if config.MYSQL_DSN != "" {
		return gorm.Open(mysql.Open(config.MYSQL_DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
		})
	}
	if config.SQLITE_FILE != "" {
		return gorm.Open(sqlite.Open(config.SQLITE_FILE), &gorm.Config{
			SkipDefaultTransaction: true,
		})
	}
	return nil, errors.New("no database configured: set MYSQL_DSN or SQLITE_FILE")
}
