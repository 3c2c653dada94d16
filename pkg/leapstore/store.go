package leapstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store caches a parsed leap-second list in SQLite so the source file
// only needs fetching when it nears expiry. WAL mode with a busy
// timeout keeps concurrent readers (several processes sharing one
// cache) safe.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database and initializes the
// schema.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS leap_seconds (
		ntp_seconds INTEGER PRIMARY KEY,
		tai_offset  INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the cached list with l, atomically. The previous
// contents are discarded; a leap-seconds.list is always a complete
// history, never an increment.
func (s *Store) Save(l *List) error {
	if err := l.validate(); err != nil {
		return err
	}
	return retryOnContention(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`DELETE FROM leap_seconds`); err != nil {
			return err
		}
		for _, e := range l.Entries {
			if _, err := tx.Exec(
				`INSERT INTO leap_seconds (ntp_seconds, tai_offset) VALUES (?, ?)`,
				e.NTPSeconds, e.TAIOffset,
			); err != nil {
				return err
			}
		}
		for _, kv := range []struct {
			key   string
			value int64
		}{
			{"updated", l.Updated},
			{"expires", l.Expires},
		} {
			if _, err := tx.Exec(
				`INSERT INTO meta (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				kv.key, kv.value,
			); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

// Load reads the cached list back. An empty cache returns (nil, nil).
func (s *Store) Load() (*List, error) {
	rows, err := s.db.Query(
		`SELECT ntp_seconds, tai_offset FROM leap_seconds ORDER BY ntp_seconds`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	l := &List{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.NTPSeconds, &e.TAIOffset); err != nil {
			return nil, err
		}
		l.Entries = append(l.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(l.Entries) == 0 {
		return nil, nil
	}

	for _, kv := range []struct {
		key  string
		dest *int64
	}{
		{"updated", &l.Updated},
		{"expires", &l.Expires},
	} {
		err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, kv.key).Scan(kv.dest)
		if err != nil && err != sql.ErrNoRows {
			return nil, err
		}
	}

	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}
