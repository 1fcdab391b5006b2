package department

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewNotFound("department")
	ErrTenantMismatch = serrors.NewTenantMismatch("department")
)

// Repository reads and writes departments scoped to an organization. Every
// operation takes the orgID explicitly; a department that exists under a
// different organization fails with ErrTenantMismatch, never a silent nil.
type Repository interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*Department, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*Department, error)
	Create(ctx context.Context, d *Department) (*Department, error)
	Update(ctx context.Context, d *Department) (*Department, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	CountUsers(ctx context.Context, orgID, id uuid.UUID) (int64, error)
}
