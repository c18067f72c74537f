package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"time"

	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates users and issues HS256 tokens.
type AuthService struct {
	uow    repository.UnitOfWork
	cfg    config.JwtConfig
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(uow repository.UnitOfWork, cfg config.JwtConfig, logger *slog.Logger) *AuthService {
	return &AuthService{uow: uow, cfg: cfg, logger: logger}
}

// dummyHash is a bcrypt hash compared against when the identity does not
// resolve, so lookup misses cost the same as password mismatches.
const dummyHash = "$2a$14$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Login resolves identity as an email or username and checks the password.
// Both failure modes return ErrUserUnauthorized.
func (s *AuthService) Login(ctx context.Context, identity, password string) (*domain.User, error) {
	log := s.logger.With("context", "Login")

	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}

	var u *domain.User
	if isEmail(identity) {
		u, err = users.GetByEmail(ctx, identity)
	} else {
		u, err = users.GetByUsername(ctx, identity)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, domain.ErrUserUnauthorized
		}
		return nil, err
	}
	if !u.CheckPassword(password) {
		log.Warn("login rejected", "identity", identity)
		return nil, domain.ErrUserUnauthorized
	}
	log.Info("login successful", "user_id", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token for the user.
func (s *AuthService) GenerateToken(u *domain.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["role"] = string(u.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUser loads the user named by a verified token. The role claim is
// cross-checked against the store so a stale token cannot keep privileges a
// role change revoked.
func (s *AuthService) CurrentUser(ctx context.Context, token *jwt.Token) (*domain.User, error) {
	if token == nil {
		return nil, domain.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUserUnauthorized
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrUserUnauthorized
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.ErrUserUnauthorized
	}

	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserUnauthorized
		}
		return nil, err
	}
	if role, ok := claims["role"].(string); ok && domain.Role(role) != u.Role {
		return nil, domain.ErrUserUnauthorized
	}
	return u, nil
}

func isEmail(identity string) bool {
	_, err := mail.ParseAddress(identity)
	return err == nil
}
