package admin

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"barista/internal/config"
	"barista/internal/domain"
	"barista/internal/errors"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
}

type Service struct {
	repo   Repository
	cfg    config.AuthConfig
	logger *zap.Logger
}

func NewService(repo Repository, cfg config.AuthConfig, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies credentials and issues a signed session token. A bad
// username and a bad password both come back as the same validation
// failure so the response does not leak which admins exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	invalid := func() (string, *domain.Admin, error) {
		return "", nil, errors.NewValidationError("invalid username or password")
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return invalid()
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("failed login attempt", zap.String("username", username))
		return invalid()
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   admin.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, errors.NewInternalError("signing session token", err)
	}

	s.logger.Info("admin logged in", zap.String("username", username))
	return token, admin, nil
}

func (s *Service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)) != nil {
		return errors.NewValidationError("current password is incorrect", errors.ValidationDetail{
			Field:   "currentPassword",
			Message: "current password is incorrect",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewInternalError("hashing new password", err)
	}

	if err := s.repo.UpdatePasswordHash(ctx, admin.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("admin password changed", zap.String("username", username))
	return nil
}

func (s *Service) Profile(ctx context.Context, username string) (*domain.Admin, error) {
	return s.repo.FindByUsername(ctx, username)
}

// VerifyToken parses and validates a session token, returning the
// admin username it was issued to.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.NewValidationError("invalid or expired session token")
	}

	return claims.Subject, nil
}
