package database

import (
	"fmt"

	"github.com/edamsoft/xconnect/pkgs/config"
	"github.com/edamsoft/xconnect/pkgs/model"
	"github.com/edamsoft/xconnect/pkgs/utils"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the snapshot database described by the config and makes
// sure its tables exist
func Connect(conf *config.DatabaseConfig) (*sqlx.DB, error) {
	switch conf.Type {
	case config.DATABASE_TYPE_POSTGRES:
		return connectPostgres(conf)
	default:
		return connectSqlite(conf.Path)
	}
}

func connectSqlite(path string) (*sqlx.DB, error) {
	logger := log.WithFields(log.Fields{
		"caller": "database.Connect",
		"path":   path,
	})

	ex, err := utils.PathExists(path)
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&busy_timeout=2147483647", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	model.CreateTables(db)

	if !ex {
		logger.Debugln("created new db file")
	}
	return db, nil
}

func connectPostgres(conf *config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DBName,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := model.CreateTablesPostgres(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
