package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"RapidCapture_SecurityTrainer/internal/session"
)

// SessionStore keeps session snapshots in sqlite so a user can resume a
// run after a restart. It satisfies session.Store. State and stats are
// stored as separate JSON blobs under their well-known keys.
type SessionStore struct{}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(username string) (session.Snapshot, error) {
	var snap session.Snapshot
	if err := loadBlob(username, session.StateKey, &snap.State); err != nil {
		return session.Snapshot{}, err
	}
	if err := loadBlob(username, session.StatsKey, &snap.Stats); err != nil {
		return session.Snapshot{}, err
	}
	return snap, nil
}

func (s *SessionStore) Save(username string, snap session.Snapshot) error {
	if err := saveBlob(username, session.StateKey, snap.State); err != nil {
		return err
	}
	return saveBlob(username, session.StatsKey, snap.Stats)
}

func (s *SessionStore) Clear(username string) error {
	_, err := db.Exec("DELETE FROM session_blobs WHERE username = ?", username)
	return err
}

func loadBlob(username, key string, dst any) error {
	var value string
	row := db.QueryRow("SELECT value FROM session_blobs WHERE username = ? AND key = ?", username, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	return json.Unmarshal([]byte(value), dst)
}

func saveBlob(username, key string, src any) error {
	value, err := json.Marshal(src)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO session_blobs(username, key, value, updated_at) VALUES(?, ?, ?, ?)
		 ON CONFLICT(username, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		username, key, string(value), time.Now(),
	)
	return err
}
