package gorm

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Catalog *gorm.DB
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(host, port, username, pass, dbname string, sslmode bool) (*DB, error) {
	if host == "" && port == "" && dbname == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	mode := "disable"
	if sslmode {
		mode = "require"
	}
	connectionStr := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0", host, username, pass, dbname, port, mode)

	pg, err := gorm.Open(postgres.Open(connectionStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Infof("Connected to postgres at %s:%s/%s", host, port, dbname)
	return &DB{Catalog: pg}, nil
}

// Disconnect func
func Disconnect(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Catalog database connection has closed")
}
