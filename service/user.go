package service

import (
	"context"

	"github.com/ncobase/workforce/data/repository"
	"github.com/ncobase/workforce/ecode"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/security/crypto"
	"github.com/ncobase/workforce/security/jwt"
	"github.com/ncobase/workforce/structs"
)

var (
	errUserExists         = ecode.AlreadyExist("User")
	errInvalidCredentials = ecode.Text(ecode.InvalidCredentials)
)

// UserService handles signup and login.
type UserService struct {
	repo   repository.UserRepository
	tokens *jwt.TokenManager
	logger *logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, tokens *jwt.TokenManager, logger *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Signup creates an account unless one with the same email exists.
func (s *UserService) Signup(ctx context.Context, body *structs.SignupBody) (*repository.User, error) {
	if _, err := s.repo.FindByEmail(ctx, body.Email); err == nil {
		return nil, ecode.ConflictErr("user.signup", errUserExists)
	} else if !ecode.IsNotFound(err) {
		return nil, err
	}

	hash, err := crypto.HashPassword(body.Password)
	if err != nil {
		return nil, ecode.Internal("user.signup", err)
	}

	user, err := s.repo.Create(ctx, &repository.User{
		Username: body.Username,
		Email:    body.Email,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "User registered", "user_id", user.ID.Hex())
	return user, nil
}

// Login verifies the credentials and returns a signed access token. An
// unknown email and a wrong password fail identically.
func (s *UserService) Login(ctx context.Context, body *structs.LoginBody) (string, error) {
	var password string
	if body.Password != nil {
		password = *body.Password
	}

	user, err := s.repo.FindByEmail(ctx, body.Email)
	if err != nil {
		if ecode.IsNotFound(err) {
			return "", ecode.UnauthorizedErr("user.login", errInvalidCredentials)
		}
		return "", err
	}

	if !crypto.ComparePassword(user.Password, password) {
		s.logger.Warn(ctx, "Login rejected", "user_id", user.ID.Hex())
		return "", ecode.UnauthorizedErr("user.login", errInvalidCredentials)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		return "", ecode.Internal("user.login", err)
	}

	s.logger.Info(ctx, "User logged in", "user_id", user.ID.Hex())
	return token, nil
}
