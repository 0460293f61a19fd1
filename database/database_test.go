package database

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"AniSong/config"

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
	return db
}

func TestConnectSQLiteAppliesPragmas(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DatabaseDriver: "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "anisong.db"),
	}
	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var foreignKeys int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys); err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatalf("foreign_keys = %d, want 1", foreignKeys)
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("read journal_mode pragma: %v", err)
	}
	if !strings.EqualFold(journalMode, "wal") {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatalf("read busy_timeout pragma: %v", err)
	}
	if busyTimeout != 5000 {
		t.Fatalf("busy_timeout = %d, want 5000", busyTimeout)
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{DatabaseDriver: "oracle"}
	if _, err := Connect(cfg); err == nil {
		t.Fatal("expected an unknown driver error")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, table := range []string{"roles", "users", "animes", "songs", "song_requests", "anime_requests"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrationsRejectUnknownDriver(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := RunMigrations(db, "oracle"); err == nil {
		t.Fatal("expected an unknown driver error")
	}
}

func TestSeedRolesAndAdmin(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if err := SeedRoles(db); err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	if err := SeedRoles(db); err != nil {
		t.Fatalf("re-seed roles: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM roles").Scan(&count); err != nil {
		t.Fatalf("count roles: %v", err)
	}
	if count != 2 {
		t.Fatalf("roles = %d, want 2", count)
	}

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "super-secret-pw",
		AdminEmail:    "admin@anisong.local",
	}
	if err := SeedAdminUser(db, cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := SeedAdminUser(db, cfg); err != nil {
		t.Fatalf("re-seed admin: %v", err)
	}

	var username string
	err := db.QueryRow(
		"SELECT u.username FROM users u JOIN roles r ON u.role_id = r.id WHERE r.name = 'Administrateur'",
	).Scan(&username)
	if err != nil {
		t.Fatalf("admin user lookup: %v", err)
	}
	if username != "admin" {
		t.Fatalf("admin username = %q, want %q", username, "admin")
	}
}

func TestSeedAdminSkippedWithoutPassword(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if err := SeedRoles(db); err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	cfg := &config.Config{AdminUsername: "admin", AdminPassword: ""}
	if err := SeedAdminUser(db, cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("users = %d, want 0", count)
	}
}
