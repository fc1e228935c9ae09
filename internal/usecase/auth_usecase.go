package usecase

import (
	"errors"
	"time"

	"hrms-backend/config"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials covers unknown email, wrong password and a
// corrupt stored digest alike, so login failures never reveal whether
// an email is registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUsecase struct {
	users repository.UserRepository
}

func NewAuthUsecase(users repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{users: users}
}

// Login verifies the credentials and returns a signed token plus the
// authenticated user.
func (u *AuthUsecase) Login(email, password string) (string, model.User, error) {
	user, err := u.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", model.User{}, ErrInvalidCredentials
		}
		return "", model.User{}, err
	}

	if err := utils.VerifyPassword(user.HashedPassword, password); err != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(config.JWTTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", model.User{}, err
	}

	return signed, user, nil
}

// Me returns the profile of an already-authenticated user.
func (u *AuthUsecase) Me(userID uint) (model.User, error) {
	return u.users.GetByID(userID)
}
