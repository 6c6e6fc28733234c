package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// SessionKind identifies which loop produced a session.
type SessionKind string

const (
	// SessionKindViewer marks a session recorded by the overlay viewer.
	SessionKindViewer SessionKind = "viewer"
	// SessionKindStreamer marks a session recorded by the cursor streamer.
	SessionKindStreamer SessionKind = "streamer"
)

// Session represents one recorded run of the viewer or the streamer.
type Session struct {
	ID        string
	Kind      SessionKind
	StartedAt time.Time
	EndedAt   *time.Time
}

// SessionRepository provides operations on recorded sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session into the database.
func (r *SessionRepository) Create(sess *Session) error {
	sess.StartedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, kind, started_at) VALUES (?, ?, ?)`,
		sess.ID, string(sess.Kind), sess.StartedAt,
	)
	return err
}

// End marks a session as finished.
func (r *SessionRepository) End(id string) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ? WHERE id = ?`,
		time.Now(), id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var kind string
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, kind, started_at, ended_at FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &kind, &sess.StartedAt, &endedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sess.Kind = SessionKind(kind)
	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}
	return sess, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, kind, started_at, ended_at FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		var kind string
		var endedAt sql.NullTime

		if err := rows.Scan(&sess.ID, &kind, &sess.StartedAt, &endedAt); err != nil {
			return nil, err
		}

		sess.Kind = SessionKind(kind)
		if endedAt.Valid {
			sess.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
