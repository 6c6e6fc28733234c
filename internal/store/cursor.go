package store

import (
	"database/sql"
	"time"
)

// CursorSample is one published cursor position recorded under a session.
type CursorSample struct {
	ID        int64
	SessionID string
	Seq       int
	X         float64
	Y         float64
	Pinch     bool
	CreatedAt time.Time
}

// CursorRepository provides operations on recorded cursor samples.
type CursorRepository struct {
	db *sql.DB
}

// Cursors returns the cursor sample repository for this store.
func (s *Store) Cursors() *CursorRepository {
	return &CursorRepository{db: s.db}
}

// Append records one cursor sample with the given sequence number.
func (r *CursorRepository) Append(sessionID string, seq int, x, y float64, pinch bool) error {
	_, err := r.db.Exec(
		`INSERT INTO cursor_samples (session_id, seq, x, y, pinch) VALUES (?, ?, ?, ?, ?)`,
		sessionID, seq, x, y, pinch,
	)
	return err
}

// ListBySession retrieves a session's cursor samples in publish order.
func (r *CursorRepository) ListBySession(sessionID string) ([]CursorSample, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, seq, x, y, pinch, created_at
		 FROM cursor_samples
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []CursorSample
	for rows.Next() {
		var s CursorSample
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Seq, &s.X, &s.Y, &s.Pinch, &s.CreatedAt); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
