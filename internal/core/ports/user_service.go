package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// UserFields carries the optional attributes accepted by CreateUser.
type UserFields struct {
	Name        string
	IsStaff     bool
	IsSuperuser bool
	// Inactive creates the account disabled; accounts are active by default.
	Inactive bool
}

// UserService is the user factory plus login.
type UserService interface {
	CreateUser(ctx context.Context, email, password string, extra UserFields) (*domain.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error)
	CheckPassword(user *domain.User, password string) bool
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
