package db

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open picks the driver from the DSN: postgres URLs go to PostgreSQL, any other
// non-empty DSN is treated as MySQL and an empty one falls back to a SQLite file.
func Open(dsn, sqliteFile string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}
	return gorm.Open(Dialector(dsn, sqliteFile), cfg)
}

func Dialector(dsn, sqliteFile string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "postgres://"):
		// Some hosting providers still hand out the legacy scheme
		return postgres.Open("postgresql://" + strings.TrimPrefix(dsn, "postgres://"))
	case strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn)
	case dsn != "":
		return mysql.Open(dsn)
	}
	return sqlite.Open(sqliteFile)
}
