package services

import (
	"context"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserFinder looks up an account by login email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthService struct {
	Users UserFinder
}

func (s AuthService) users() UserFinder {
	if s.Users != nil {
		return s.Users
	}
	return repositories.UserRepository{}
}

// Login verifies email and password. Unknown email, wrong password and
// inactive accounts all produce the same invalid-credentials error.
func (s AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, domain.Validation("credentials", "email and password are required")
	}
	invalid := domain.InvalidCredentials("email or password is incorrect")

	u, err := s.users().GetByEmail(ctx, email)
	if domain.IsNotFound(err) {
		return models.User{}, invalid
	}
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, invalid
	}
	if !u.Active() {
		return models.User{}, invalid
	}
	return u, nil
}
