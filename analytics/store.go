// Package analytics provides privacy-light page-view tracking on its own
// SQLite database, kept separate from the in-memory site data.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for visit tracking. Visitor IPs are
// never stored raw; they are hashed with a per-database random salt.
type Store struct {
	db   *sql.DB
	salt string
}

// NewStore opens (or creates) the analytics database at path and ensures the
// schema and the hashing salt exist.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create analytics dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.initSalt(); err != nil {
		return nil, fmt.Errorf("init salt: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    ip_hash TEXT NOT NULL,
    referrer TEXT,
    timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

func (s *Store) initSalt() error {
	var salt string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'ip_salt'`).Scan(&salt)
	switch {
	case err == sql.ErrNoRows:
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		salt = hex.EncodeToString(buf)
		if _, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES ('ip_salt', ?)`, salt); err != nil {
			return err
		}
	case err != nil:
		return err
	}
	s.salt = salt
	return nil
}

func (s *Store) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(s.salt + ip))
	return hex.EncodeToString(sum[:16])
}

// timeFormat is how timestamps are stored. SQLite's date functions only
// understand ISO 8601 text, so times are bound as formatted strings rather
// than raw time.Time values.
const timeFormat = time.RFC3339

// RecordVisit stores one page view.
func (s *Store) RecordVisit(path, ip, referrer string) error {
	_, err := s.db.Exec(
		`INSERT INTO visits (path, ip_hash, referrer, timestamp) VALUES (?, ?, ?, ?)`,
		path, s.hashIP(ip), referrer, time.Now().UTC().Format(timeFormat),
	)
	return err
}

// PathCount is the visit total for one page path.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DayCount is the visit total for one calendar day.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// VisitSummary aggregates recent traffic for the admin dashboard.
type VisitSummary struct {
	Days     int         `json:"days"`
	Total    int         `json:"total"`
	Visitors int         `json:"visitors"`
	TopPages []PathCount `json:"topPages"`
	ByDay    []DayCount  `json:"byDay"`
}

// Summary returns totals, unique visitors, top pages, and a daily rollup for
// the last n days.
func (s *Store) Summary(days int) (VisitSummary, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(timeFormat)
	summary := VisitSummary{Days: days}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT ip_hash) FROM visits WHERE timestamp >= ?`, cutoff,
	).Scan(&summary.Total, &summary.Visitors)
	if err != nil {
		return VisitSummary{}, err
	}

	rows, err := s.db.Query(
		`SELECT path, COUNT(*) AS n FROM visits WHERE timestamp >= ? GROUP BY path ORDER BY n DESC LIMIT 10`, cutoff,
	)
	if err != nil {
		return VisitSummary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return VisitSummary{}, err
		}
		summary.TopPages = append(summary.TopPages, pc)
	}
	if err := rows.Err(); err != nil {
		return VisitSummary{}, err
	}

	dayRows, err := s.db.Query(
		`SELECT date(timestamp), COUNT(*) FROM visits WHERE timestamp >= ? GROUP BY date(timestamp) ORDER BY date(timestamp)`, cutoff,
	)
	if err != nil {
		return VisitSummary{}, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var dc DayCount
		if err := dayRows.Scan(&dc.Day, &dc.Count); err != nil {
			return VisitSummary{}, err
		}
		summary.ByDay = append(summary.ByDay, dc)
	}
	return summary, dayRows.Err()
}

// DeleteOlderThan removes visits older than the retention window and returns
// how many rows were dropped.
func (s *Store) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention).Format(timeFormat)
	res, err := s.db.Exec(`DELETE FROM visits WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StartCleanupScheduler periodically prunes visits past the retention
// window. The returned stop function cancels the scheduler.
func (s *Store) StartCleanupScheduler(retention, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				_, _ = s.DeleteOlderThan(retention)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
