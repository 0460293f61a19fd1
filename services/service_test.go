package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"AniSong/database"
	"AniSong/models"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "anisong.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	return db
}

func registerUser(t *testing.T, identity *IdentityService, username string) *models.User {
	t.Helper()

	user, err := identity.Register(username, username+"@example.com", "Azerty2000", "Azerty2000")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func registerAdmin(t *testing.T, db *sql.DB, identity *IdentityService, username string) *models.User {
	t.Helper()

	user := registerUser(t, identity, username)
	_, err := db.Exec(
		"UPDATE users SET role_id = (SELECT id FROM roles WHERE name = $1) WHERE id = $2",
		models.RoleAdmin, user.ID,
	)
	if err != nil {
		t.Fatalf("promote %s to admin: %v", username, err)
	}
	user, err = identity.UserByID(user.ID)
	if err != nil {
		t.Fatalf("reload %s: %v", username, err)
	}
	if !user.IsAdmin() {
		t.Fatalf("expected %s to be admin", username)
	}
	return user
}
