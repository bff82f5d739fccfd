package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/soundvault/catalog-api/internal/api/metrics"
	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/core/ports"
	"github.com/soundvault/catalog-api/internal/pkg/hasher"
)

const defaultTokenTTL = 60 * 24 * time.Hour

// TokenConfig carries the signing parameters for issued session tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// UserService implements the credential lifecycle: login, creation,
// password change, deletion, and listing.
type UserService struct {
	repo   ports.UserRepository
	token  TokenConfig
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, token TokenConfig, logger zerolog.Logger) *UserService {
	if token.TTL <= 0 {
		token.TTL = defaultTokenTTL
	}
	return &UserService{repo: repo, token: token, logger: logger}
}

// Login verifies the presented credential against the stored digest and
// returns a signed session token. The flow is stateless: no lockout,
// throttling, or replay protection.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrEmptyField
	}

	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		return "", err
	}

	if hasher.Digest(password) != user.Password {
		metrics.LoginsTotal.WithLabelValues("bad_credential").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")
	return token, nil
}

// Create stores a new identity. The requested role is coerced into the
// allowed set and the stored age is always the fixed default.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.ErrEmptyField
	}

	user := &domain.User{
		Username: username,
		Password: hasher.Digest(in.Password),
		Age:      domain.DefaultAge,
		Role:     domain.NormalizeRole(in.Role),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersWrittenTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created")
	return user, nil
}

// ChangePassword re-verifies the current credential, then overwrites the
// record with a fresh one carrying only the username and the new digest.
// Age and role fall back to their zero/default values on that write; this
// mirrors the legacy store's partially-copied replacement record and is
// preserved deliberately.
func (s *UserService) ChangePassword(ctx context.Context, username, current, next string) error {
	if username == "" || current == "" || next == "" {
		return domain.ErrEmptyField
	}

	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}

	if hasher.Digest(current) != user.Password {
		return domain.ErrInvalidCredentials
	}

	replacement := &domain.User{
		Username: user.Username,
		Password: hasher.Digest(next),
		Role:     domain.RoleBasic,
	}
	if err := s.repo.Save(ctx, replacement); err != nil {
		return err
	}

	metrics.UsersWrittenTotal.WithLabelValues("change_password").Inc()
	s.logger.Info().Str("username", user.Username).Msg("password changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(username)); err != nil {
		return err
	}
	metrics.UsersWrittenTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// generateToken issues an HS256 session token valid from now for the
// configured TTL. Tokens are stateless assertions: deleting or mutating the
// identity afterwards does not invalidate an outstanding token.
func (s *UserService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(s.token.TTL).Unix(),
	}
	if s.token.Issuer != "" {
		claims["iss"] = s.token.Issuer
	}
	if s.token.Audience != "" {
		claims["aud"] = s.token.Audience
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.token.Secret))
}
