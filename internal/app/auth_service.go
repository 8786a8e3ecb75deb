package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService backs the login flow of the HTTP surface.
type AuthService struct {
	users       user.Repository
	hasher      *security.PasswordHasher
	jwtProvider *security.JWTProvider
	logger      Logger
	tokenTTL    time.Duration
}

func NewAuthService(users user.Repository, hasher *security.PasswordHasher, jwtProvider *security.JWTProvider, logger Logger, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		jwtProvider: jwtProvider,
		logger:      logger,
		tokenTTL:    tokenTTL,
	}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" || password == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"login": "login and password are required"})
	}
	account, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if !s.hasher.Compare(account.PasswordHash, password) {
		s.logger.Info(fmt.Sprintf("login failed login=%s", login))
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, expiresAt, err := s.jwtProvider.Generate(account.TaxID, account.Login, account.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: *account}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, taxID, current, next string) error {
	account, err := s.users.GetByTaxID(ctx, taxID)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(account.PasswordHash, current) {
		return common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	if _, err := s.users.Upsert(ctx, *account); err != nil {
		return err
	}
	return nil
}
