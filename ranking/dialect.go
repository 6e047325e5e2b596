package ranking

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dialect isolates driver-specific SQL for the ranking store
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DefaultDSN is used when no DSN is configured; empty means a DSN is required
	DefaultDSN() string

	// RewriteQuery converts ? placeholders if the driver needs another syntax
	RewriteQuery(query string) string

	// ConfigureConnection applies pool and session settings after the first ping
	ConfigureConnection(db *sql.DB) error

	// CreateTableQuery returns the DDL for the ranking table
	CreateTableQuery() string
}

// DialectFor resolves a configured dialect name
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3", "":
		return NewSQLiteDialect(), nil
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, name)
	}
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
