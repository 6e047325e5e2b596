package ranking

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDialect stores the board in a shared PostgreSQL database
type PostgresDialect struct{}

func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DefaultDSN() string {
	return ""
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return nil
}

func (d *PostgresDialect) CreateTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS ranking (
			id UUID PRIMARY KEY,
			slot INTEGER NOT NULL,
			name VARCHAR(64) NOT NULL,
			score INTEGER NOT NULL,
			played_on VARCHAR(10) NOT NULL,
			level_key VARCHAR(64) NOT NULL
		);
	`
}
