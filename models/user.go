package models

import "time"

const (
	RoleUser  = "Utilisateur"
	RoleAdmin = "Administrateur"
)

type Role struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	RoleID       int64     `db:"role_id"`
	RoleName     string    `db:"role_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.RoleName == RoleAdmin
}
