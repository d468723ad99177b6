package mariadb

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Migrate applies embedded goose migrations. The fsys argument must
// contain the SQL files under a top-level migrations directory.
func Migrate(db *sql.DB, fsys fs.FS) error {
	goose.SetBaseFS(fsys)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
