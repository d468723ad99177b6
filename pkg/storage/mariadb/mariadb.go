package mariadb

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/janakpur-hospital/census-backend/config"
	_ "github.com/go-sql-driver/mysql"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect opens the MariaDB connection pool. Credentials come from the
// environment via config.LoadConfig. parseTime is required so DATE and
// TIMESTAMP columns scan into time.Time.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Asia%%2FKathmandu",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database connection")
		}

		if err = db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("failed to ping database")
		}

		log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connected to MariaDB")
	})

	return db
}

// GetDB returns the connection pool established by Connect.
func GetDB() *sql.DB {
	return db
}
