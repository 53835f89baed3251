package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dermatosalud/reportes-backend/internal/auth/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	DB *sql.DB
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate verifies the email/password pair against the User table and
// returns the matching user.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	query := `
		SELECT id_user, nombre, email, password, role, created_at
		FROM User
		WHERE email = ?
	`
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID, &user.Nombre, &user.Email, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
