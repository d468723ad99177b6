package main

import (
	"embed"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janakpur-hospital/census-backend/config"
	"github.com/janakpur-hospital/census-backend/internal/routes"
	"github.com/janakpur-hospital/census-backend/pkg/storage/mariadb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()
	db := mariadb.Connect()

	if err := mariadb.Migrate(db, embedMigrations); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.Init(e, db)

	log.Info().Str("port", cfg.Port).Msg("census backend listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
