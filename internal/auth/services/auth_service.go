package services

import (
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/janakpur-hospital/census-backend/internal/auth/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	DB *sql.DB
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate verifies the password hash for a username and returns
// the matching profile. The departments column stores a
// comma-separated id list.
func (s *AuthService) Authenticate(username, password string) (*models.UserProfile, error) {
	var user models.UserProfile
	var departments string
	var lastActive sql.NullTime

	err := s.DB.QueryRow(`
		SELECT id, username, password, full_name, role, departments, created_at, last_active
		FROM user_profiles
		WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.FullName,
			&user.Role, &departments, &user.CreatedAt, &lastActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if departments != "" {
		user.Departments = strings.Split(departments, ",")
	}
	if lastActive.Valid {
		user.LastActive = &lastActive.Time
	}

	// Best effort; login does not fail on this.
	_, _ = s.DB.Exec(`UPDATE user_profiles SET last_active = NOW() WHERE id = ?`, user.ID)

	return &user, nil
}
