package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// LoginInput carries the admin login payload. RoleName is the role the
// caller claims; the lookup fails unless the stored role matches it exactly.
type LoginInput struct {
	Email    string
	Password string
	RoleName string
}

// LoginResult is the authenticated principal: the reseller record linked to
// the matched user, plus a signed session token.
type LoginResult struct {
	Reseller *domain.Reseller
	Token    string
}

// AuthService validates admin credentials.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}
