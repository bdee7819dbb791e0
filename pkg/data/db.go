package data

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DataFileName string = "data.db"

	driverName    = "sqlite"
	gooseDialect  = "sqlite3"
	migrationsDir = "migrations"
	dirMode       = 0700
)

var (
	//go:embed migrations/*.sql
	migrations embed.FS

	errDBNotInitialized = errors.New("database not initialized")
)

// Init creates the database file when needed and applies pending migrations.
func Init(dbFilePath string) error {
	if dbFilePath == "" {
		return errors.New("dbFilePath not specified")
	}

	if dir := filepath.Dir(dbFilePath); dir != "" {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(dir, dirMode); err != nil {
				return errors.Wrapf(err, "error creating database dir: %s", dir)
			}
		}
	}

	db, err := GetDB(dbFilePath)
	if err != nil {
		return errors.Wrapf(err, "error opening database: %s", dbFilePath)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	slog.Debug("applying db migrations", "path", dbFilePath)
	if err := goose.Up(db, migrationsDir); err != nil {
		return errors.Wrapf(err, "failed to migrate database schema in: %s", dbFilePath)
	}

	return nil
}

// GetDB opens the database at path.
func GetDB(path string) (*sql.DB, error) {
	conn, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", path)
	}
	return conn, nil
}

// Version returns the applied schema version.
func Version(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return 0, errors.Wrap(err, "failed to set migration dialect")
	}
	v, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get schema version")
	}
	return v, nil
}

// gooseLogger routes migration output to debug logs.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "goose")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "goose")
	os.Exit(1)
}
