package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the schema for the given driver. The table set is
// identical across backends; only the id/timestamp column types differ.
func RunMigrations(db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case "postgres":
		statements = postgresSchema
	case "sqlite":
		statements = sqliteSchema
	default:
		return fmt.Errorf("unknown database driver: %s", driver)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(15) UNIQUE NOT NULL,
		email VARCHAR(50) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role_id INTEGER NOT NULL REFERENCES roles(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS animes (
		id SERIAL PRIMARY KEY,
		name VARCHAR(80) UNIQUE NOT NULL,
		img_url VARCHAR(120) NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS songs (
		id SERIAL PRIMARY KEY,
		title VARCHAR(60) NOT NULL,
		interpreter VARCHAR(60) NOT NULL,
		relation VARCHAR(5) NOT NULL,
		ytb_url VARCHAR(120) NOT NULL,
		spoty_url VARCHAR(120) NOT NULL,
		anime_id INTEGER NOT NULL REFERENCES animes(id) ON DELETE CASCADE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS song_requests (
		id SERIAL PRIMARY KEY,
		title VARCHAR(60) NOT NULL,
		interpreter VARCHAR(60) NOT NULL,
		relation VARCHAR(5) NOT NULL,
		ytb_url VARCHAR(120) NOT NULL,
		spoty_url VARCHAR(120) NOT NULL,
		anime_id INTEGER NOT NULL REFERENCES animes(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS anime_requests (
		id SERIAL PRIMARY KEY,
		name VARCHAR(80) NOT NULL,
		img_url VARCHAR(120) NOT NULL,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role_id INTEGER NOT NULL REFERENCES roles(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS animes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		img_url TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS songs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		interpreter TEXT NOT NULL,
		relation TEXT NOT NULL,
		ytb_url TEXT NOT NULL,
		spoty_url TEXT NOT NULL,
		anime_id INTEGER NOT NULL REFERENCES animes(id) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS song_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		interpreter TEXT NOT NULL,
		relation TEXT NOT NULL,
		ytb_url TEXT NOT NULL,
		spoty_url TEXT NOT NULL,
		anime_id INTEGER NOT NULL REFERENCES animes(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS anime_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		img_url TEXT NOT NULL,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
}
