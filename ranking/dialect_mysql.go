package ranking

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect stores the board in a shared MySQL database
type MySQLDialect struct{}

func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DefaultDSN() string {
	return ""
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
	return nil
}

func (d *MySQLDialect) CreateTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS ranking (
			id CHAR(36) PRIMARY KEY,
			slot INT NOT NULL,
			name VARCHAR(64) NOT NULL,
			score INT NOT NULL,
			played_on VARCHAR(10) NOT NULL,
			level_key VARCHAR(64) NOT NULL
		) CHARACTER SET utf8mb4;
	`
}
