package database

import (
	"database/sql"
	"fmt"

	"AniSong/config"
	"AniSong/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedRoles ensures the two static roles exist.
func SeedRoles(db *sql.DB) error {
	for _, name := range []string{models.RoleUser, models.RoleAdmin} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM roles WHERE name = $1", name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check for role %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := db.Exec("INSERT INTO roles (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	return nil
}

// SeedAdminUser creates the administrator account from environment
// credentials. Skipped when ADMIN_PASSWORD is unset.
func SeedAdminUser(db *sql.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", cfg.AdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if count > 0 {
		// Admin user already exists, skip seeding
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var roleID int64
	if err := db.QueryRow("SELECT id FROM roles WHERE name = $1", models.RoleAdmin).Scan(&roleID); err != nil {
		return fmt.Errorf("failed to look up admin role: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO users (username, email, password_hash, role_id) VALUES ($1, $2, $3, $4)",
		cfg.AdminUsername,
		cfg.AdminEmail,
		string(hashedPassword),
		roleID,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
