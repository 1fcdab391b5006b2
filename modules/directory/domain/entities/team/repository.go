package team

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound       = serrors.NewNotFound("team")
	ErrTenantMismatch = serrors.NewTenantMismatch("team")
)

type Repository interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*Team, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*Team, error)
	ListByDepartment(ctx context.Context, orgID, deptID uuid.UUID) ([]*Team, error)
	Create(ctx context.Context, t *Team) (*Team, error)
	Update(ctx context.Context, t *Team) (*Team, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}
