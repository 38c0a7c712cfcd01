package database

import (
	"database/sql"
	"fmt"
	"log"
	"net"

	"github.com/dimfu/bracketeer/config"
	"github.com/go-sql-driver/mysql"
)

var _db *sql.DB

func GetDB() *sql.DB {
	return _db
}

// DSN formats the MySQL data source name for cfg. Migrations need
// multi-statement support.
func DSN(cfg *config.Environment) string {
	c := mysql.NewConfig()
	c.User = cfg.DB_USER
	c.Passwd = cfg.DB_PASSWORD
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.DB_HOST, cfg.DB_PORT)
	c.DBName = cfg.DB_NAME
	c.MultiStatements = true
	return c.FormatDSN()
}

func Init() *sql.DB {
	cfg := config.GetEnv()
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		panic(err)
	}

	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	log.Printf("Established connection to database")

	if err = Migrate(db, cfg.DB_NAME); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	_db = db

	return db
}
