package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the sqlite database at path and creates the schema.
// Called once at startup; a failure here is fatal.
func InitDB(path string) {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("storage.InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL,
			"created_at" DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS profiles (
			"user_id" INTEGER PRIMARY KEY,
			"total_score" INTEGER NOT NULL DEFAULT 0,
			"scenarios_attempted" INTEGER NOT NULL DEFAULT 0,
			"scenarios_correct" INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS user_attempts (
			"id" TEXT PRIMARY KEY,
			"user_id" INTEGER NOT NULL,
			"scenario_id" TEXT NOT NULL,
			"selected_action" TEXT NOT NULL,
			"is_correct" INTEGER NOT NULL,
			"score_change" INTEGER NOT NULL,
			"time_taken_seconds" INTEGER NOT NULL,
			"created_at" DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS session_blobs (
			"username" TEXT NOT NULL,
			"key" TEXT NOT NULL,
			"value" TEXT NOT NULL,
			"updated_at" DATETIME NOT NULL,
			PRIMARY KEY(username, key)
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("storage.InitDB(): Failed to create schema: %v", err)
		}
	}
	log.Println("storage.InitDB(): Init and create tables successfully!")
}

// CloseDB closes the database handle, mainly for tests.
func CloseDB() {
	if db != nil {
		db.Close()
		db = nil
	}
}
