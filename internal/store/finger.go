package store

import (
	"database/sql"
	"time"
)

// FingerCount is one per-frame finger classification recorded under a session.
type FingerCount struct {
	ID         int64
	SessionID  string
	Seq        int
	Handedness string
	Count      int
	CreatedAt  time.Time
}

// FingerRepository provides operations on recorded finger counts.
type FingerRepository struct {
	db *sql.DB
}

// Fingers returns the finger count repository for this store.
func (s *Store) Fingers() *FingerRepository {
	return &FingerRepository{db: s.db}
}

// Append records one finger count with the given sequence number.
func (r *FingerRepository) Append(sessionID string, seq int, handedness string, count int) error {
	_, err := r.db.Exec(
		`INSERT INTO finger_counts (session_id, seq, handedness, count) VALUES (?, ?, ?, ?)`,
		sessionID, seq, handedness, count,
	)
	return err
}

// ListBySession retrieves a session's finger counts in frame order.
func (r *FingerRepository) ListBySession(sessionID string) ([]FingerCount, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, seq, handedness, count, created_at
		 FROM finger_counts
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []FingerCount
	for rows.Next() {
		var c FingerCount
		if err := rows.Scan(&c.ID, &c.SessionID, &c.Seq, &c.Handedness, &c.Count, &c.CreatedAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
