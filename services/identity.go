package services

import (
	"database/sql"
	"fmt"

	"AniSong/models"

	"golang.org/x/crypto/bcrypt"
)

// IdentityService owns user accounts and authentication.
type IdentityService struct {
	db *sql.DB
}

func NewIdentityService(db *sql.DB) *IdentityService {
	return &IdentityService{db: db}
}

const userColumns = `u.id, u.username, u.email, u.password_hash, u.role_id, r.name, u.created_at`

func (s *IdentityService) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.RoleName,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// Register validates the submission, stores a bcrypt hash of the
// password and assigns the default "Utilisateur" role. All field errors
// are collected into a single ValidationError.
func (s *IdentityService) Register(username, email, password, confirmation string) (*models.User, error) {
	var count int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username = $1 OR email = $2",
		username, email,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	err := validate(
		required("username", username),
		lengthBetween("username", username, 4, 15),
		required("email", email),
		maxLength("email", email, 50),
		looksLikeEmail("email", email),
		required("password", password),
		lengthBetween("password", password, 8, 80),
		alreadyTaken(count > 0),
		samePasswords(password, confirmation),
	)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var roleID int64
	if err := s.db.QueryRow("SELECT id FROM roles WHERE name = $1", models.RoleUser).Scan(&roleID); err != nil {
		return nil, fmt.Errorf("failed to look up default role: %w", err)
	}

	var id int64
	err = s.db.QueryRow(
		"INSERT INTO users (username, email, password_hash, role_id) VALUES ($1, $2, $3, $4) RETURNING id",
		username, email, string(hashedPassword), roleID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.UserByID(id)
}

// alreadyTaken rejects a registration whose username or email collided
// with an existing account. Same message for either collision.
func alreadyTaken(taken bool) check {
	return func() *FieldError {
		if !taken {
			return nil
		}
		return &FieldError{Field: "username", Message: "Pseudo ou Email déjà pris"}
	}
}

func samePasswords(password, confirmation string) check {
	return func() *FieldError {
		if password != confirmation {
			return &FieldError{Field: "password_confirmation", Message: "Les mots de passe ne correspondent pas"}
		}
		return nil
	}
}

// Authenticate verifies the username/password pair. Unknown usernames
// and wrong passwords fail identically.
func (s *IdentityService) Authenticate(username, password string) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT "+userColumns+" FROM users u JOIN roles r ON u.role_id = r.id WHERE u.username = $1",
		username,
	)
	user, err := s.scanUser(row)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// UserByID resolves a session principal, with the role joined in.
func (s *IdentityService) UserByID(id int64) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT "+userColumns+" FROM users u JOIN roles r ON u.role_id = r.id WHERE u.id = $1",
		id,
	)
	return s.scanUser(row)
}
