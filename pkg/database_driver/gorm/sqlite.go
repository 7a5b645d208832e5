package gorm

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectToSQLite opens (or creates) a SQLite catalog database. Use ":memory:" for a
// throwaway database.
func ConnectToSQLite(path string) (*DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		if path == ":memory:" {
			// every pooled connection would otherwise see its own empty database
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxOpenConns(10)
		}
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	logrus.Infof("Connected to sqlite at %s", path)
	return &DB{Catalog: db}, nil
}
