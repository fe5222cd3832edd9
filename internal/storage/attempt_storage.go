package storage

import (
	"time"

	"RapidCapture_SecurityTrainer/internal/drill"
)

// AttemptStore persists answered scenarios and lifetime aggregates.
// It satisfies drill.AttemptSink.
type AttemptStore struct{}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{}
}

func (s *AttemptStore) RecordAttempt(username string, a drill.Attempt) error {
	userID, err := GetUserIDByUsername(username)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO user_attempts(id, user_id, scenario_id, selected_action, is_correct, score_change, time_taken_seconds, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, userID, a.ScenarioID, a.SelectedAction, a.IsCorrect, a.ScoreDelta, a.TimeTakenSeconds, a.CreatedAt,
	)
	return err
}

func (s *AttemptStore) AccumulateProfile(username string, scoreDelta int, isCorrect bool) error {
	return AccumulateProfile(username, scoreDelta, isCorrect)
}

// ListAttemptsByUser returns a user's attempts, newest first.
func ListAttemptsByUser(username string, limit int) ([]drill.Attempt, error) {
	userID, err := GetUserIDByUsername(username)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(
		`SELECT id, scenario_id, selected_action, is_correct, score_change, time_taken_seconds, created_at
		 FROM user_attempts WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []drill.Attempt{}
	for rows.Next() {
		var a drill.Attempt
		var createdStr string
		if err := rows.Scan(&a.ID, &a.ScenarioID, &a.SelectedAction, &a.IsCorrect, &a.ScoreDelta, &a.TimeTakenSeconds, &createdStr); err != nil {
			return nil, err
		}
		// the driver stores DATETIME values as text
		a.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr[:min(len(createdStr), 19)])
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
