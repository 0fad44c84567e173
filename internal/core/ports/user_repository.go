package ports

import (
	"context"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	// Create inserts the user and returns the stored record with its ID.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update saves every mutable field of an existing user.
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Delete removes the user together with their answers and reports.
	Delete(ctx context.Context, id int64) error
}
