package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"car-fleet-api/internal/model"
	"car-fleet-api/internal/token"
	"car-fleet-api/internal/validation"
	"car-fleet-api/pkg/apierror"
)

const bcryptCost = 10

// UserStore is the persistence the auth service needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, username string, email string, passwordHash string) (model.User, error)
}

type AuthService struct {
	users  UserStore
	signer token.Signer
}

func NewAuthService(users UserStore, signer token.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Register validates the payload, rejects duplicate usernames and emails,
// hashes the password and persists the new user. The returned user never
// contains the hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.PublicUser, error) {
	if fieldErrs := validation.Registration(req); len(fieldErrs) > 0 {
		return model.PublicUser{}, apierror.NewValidation(fieldErrs)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.PublicUser{}, err
	}
	if taken {
		return model.PublicUser{}, apierror.New("ALREADY_EXISTS", "username already exists", http.StatusConflict)
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.PublicUser{}, err
	}
	if taken {
		return model.PublicUser{}, apierror.New("ALREADY_EXISTS", "email already exists", http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// Login checks the credentials and issues a bearer token. Unknown
// username and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return model.LoginResponse{}, apierror.New("BAD_REQUEST", "username and password are required", http.StatusBadRequest)
	}

	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, model.ErrUserNotFound) {
		return model.LoginResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", http.StatusUnauthorized)
	}
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("find user: %w", err)
	}

	if !s.VerifyPassword(user, req.Password) {
		return model.LoginResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", http.StatusUnauthorized)
	}

	tokenString, err := s.signer.Sign(model.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return model.LoginResponse{Token: tokenString, User: user.Public()}, nil
}

// VerifyPassword compares through bcrypt's own routine, which is safe
// against timing on the plaintext.
func (s *AuthService) VerifyPassword(user model.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
