package ranking

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Store persists the board
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
	Clear(ctx context.Context) error
	Close() error
}

// SQLStore keeps the board in one table, rewritten wholesale on Save
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQL connects with the named dialect and ensures the table exists
// An empty dsn falls back to the dialect default
func OpenSQL(ctx context.Context, dialectName, dsn string) (*SQLStore, error) {
	dialect, err := DialectFor(dialectName)
	if err != nil {
		return nil, err
	}
	if dsn == "" {
		dsn = dialect.DefaultDSN()
	}
	if dsn == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingDSN, dialect.DriverName())
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ranking database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping ranking database: %w", err)
	}
	if err := dialect.ConfigureConnection(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}
	if _, err := db.ExecContext(ctx, dialect.CreateTableQuery()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ranking table: %w", err)
	}
	return &SQLStore{db: db, dialect: dialect}, nil
}

// Dialect returns the active dialect
func (s *SQLStore) Dialect() Dialect {
	return s.dialect
}

func (s *SQLStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.RewriteQuery(
		`SELECT id, name, score, played_on, level_key FROM ranking ORDER BY slot ASC`))
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Date, &e.Level); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}
	return entries, nil
}

// Save replaces the stored board with entries, in the given order
func (s *SQLStore) Save(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin ranking save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ranking`); err != nil {
		return fmt.Errorf("failed to clear ranking: %w", err)
	}
	insert := s.dialect.RewriteQuery(
		`INSERT INTO ranking (id, slot, name, score, played_on, level_key) VALUES (?, ?, ?, ?, ?, ?)`)
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx, insert, e.ID, i, e.Name, e.Score, e.Date, e.Level); err != nil {
			return fmt.Errorf("failed to insert ranking entry %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ranking: %w", err)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ranking`); err != nil {
		return fmt.Errorf("failed to clear ranking: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// MemoryStore keeps the board in process; used where no SQL driver is available
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *MemoryStore) Save(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:0], entries...)
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
