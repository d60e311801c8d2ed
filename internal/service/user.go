package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcelly-ramos/projeto-backend/internal/hash"
	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/repo"
	"github.com/marcelly-ramos/projeto-backend/internal/tokens"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type UserService struct {
	Repo   *repo.GormRepo
	Hasher hash.Hasher
	Tokens *tokens.Issuer
}

// Register stores a new user and returns a session token for it.
func (s *UserService) Register(ctx context.Context, req transport.UserSignupRequest) (string, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	if req.Password != req.ConfirmPassword {
		return "", ErrPasswordMismatch
	}
	if len(req.Password) > hash.MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	pwHash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return "", err
	}

	user := models.User{
		Firstname:    req.Firstname,
		Surname:      req.Surname,
		Email:        normalizeEmail(req.Email),
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return "", storeErr("create user", err)
	}

	return s.Tokens.Issue(user.ID, user.Email)
}

// Login checks the credentials and returns a fresh token. An unknown email
// and a wrong password fail the same way.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.Hasher.Check(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(user.ID, user.Email)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UserUpdateRequest) error {
	return storeErr("update user", s.Repo.UpdateUser(ctx, id, map[string]any{
		"firstname": req.Firstname,
		"surname":   req.Surname,
		"email":     normalizeEmail(req.Email),
	}))
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return storeErr("delete user", s.Repo.DeleteUser(ctx, id))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
