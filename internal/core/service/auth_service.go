package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// AuthService implements admin login against the users/user_roles join.
type AuthService struct {
	users     ports.UserRepository
	resellers ports.ResellerRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, resellers ports.ResellerRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, resellers: resellers, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates an admin. Any missing field, unknown email, role-name
// mismatch or wrong password collapses into ErrInvalidCredentials so the
// response gives no hint which check failed. Password comparison is exact
// equality against the stored value; see the hardening note in DESIGN.md.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	if input.Email == "" || input.Password == "" || input.RoleName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindForLogin(ctx, input.Email, input.RoleName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != input.Password {
		return nil, domain.ErrInvalidCredentials
	}

	reseller, err := s.resellers.FindByID(ctx, user.ResellerID)
	if err != nil {
		if errors.Is(err, domain.ErrResellerNotFound) {
			s.logger.Warn().Int("user_id", user.UserID).Int("reseller_id", user.ResellerID).Msg("login matched a user with no reseller record")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.generateToken(user, input.RoleName)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.UserID).Str("role", input.RoleName).Msg("admin login")

	return &ports.LoginResult{Reseller: reseller, Token: token}, nil
}

func (s *AuthService) generateToken(user *domain.User, roleName string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.UserID,
		"email_id":    user.EmailID,
		"role":        roleName,
		"reseller_id": user.ResellerID,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
