package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound        = serrors.NewNotFound("user")
	ErrTenantMismatch  = serrors.NewTenantMismatch("user")
	ErrEmailTaken      = serrors.NewValidation("email is already in use in this organization")
	ErrVersionConflict = serrors.NewConflict("user")
)

type Repository interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*User, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*User, error)
	Count(ctx context.Context, orgID uuid.UUID) (int64, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)

	// UpdateWorkSchedule is the compare-and-swap half of the work schedule
	// merge cycle; fails with ErrVersionConflict if the row moved.
	UpdateWorkSchedule(ctx context.Context, orgID, id uuid.UUID, schedule document.Document, expectedVersion int64) error
}
