package ranking

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultSQLitePath is the ranking file created next to the binary's working directory
const DefaultSQLitePath = "ranking.db"

// SQLiteDialect is the default local store
type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DefaultDSN() string {
	return DefaultSQLitePath
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	return query
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// One connection: in-memory databases are per-connection and the game is the only writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return err
	}
	return nil
}

func (d *SQLiteDialect) CreateTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS ranking (
			id TEXT PRIMARY KEY,
			slot INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			played_on TEXT NOT NULL,
			level_key TEXT NOT NULL
		);
	`
}
