package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login returns a signed bearer token embedding the user id.
	Login(ctx context.Context, email, password string) (string, error)
}
