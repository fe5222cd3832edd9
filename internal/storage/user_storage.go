package storage

import (
	"errors"
	"time"

	"modernc.org/sqlite"
)

var ErrUsernameExists = errors.New("username already exists")

// User is an account row. The password hash never leaves this package's
// callers in JSON form.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// sqlite extended error code for UNIQUE constraint violations.
const sqliteConstraintUnique = 2067

// CreateUser inserts a user and an empty profile row in one transaction.
func CreateUser(username, passwordHash string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO users(username, password_hash, created_at) VALUES(?, ?, ?)",
		username, passwordHash, time.Now(),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrUsernameExists
		}
		return err
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO profiles(user_id) VALUES(?)", userID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetUserByUsername returns the full user row, sql.ErrNoRows when absent.
func GetUserByUsername(username string) (User, error) {
	var user User
	row := db.QueryRow("SELECT id, username, password_hash FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		return user, err
	}
	return user, nil
}

// GetUserIDByUsername resolves a username to its row id.
func GetUserIDByUsername(username string) (int, error) {
	var id int
	row := db.QueryRow("SELECT id FROM users WHERE username = ?", username)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
