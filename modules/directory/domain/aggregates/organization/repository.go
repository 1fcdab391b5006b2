package organization

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound = serrors.NewNotFound("organization")
	// ErrVersionConflict is returned by the conditional document updates when
	// the row changed since it was read. The service retries a bounded number
	// of times before surfacing it as the operation's ConflictError.
	ErrVersionConflict = serrors.NewConflict("organization")
	ErrSlugTaken       = serrors.NewValidation("slug is already in use")
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
	Create(ctx context.Context, org *Organization) (*Organization, error)
	Update(ctx context.Context, org *Organization) (*Organization, error)
	CountUsers(ctx context.Context, id uuid.UUID) (int64, error)

	// UpdateSettings and UpdateAIPolicy replace the whole document
	// conditionally on the organization still being at expectedVersion,
	// failing with ErrVersionConflict otherwise. Merging happens in the
	// service; the repository only does the compare-and-swap.
	UpdateSettings(ctx context.Context, id uuid.UUID, settings document.Document, expectedVersion int64) error
	UpdateAIPolicy(ctx context.Context, id uuid.UUID, aiPolicy document.Document, expectedVersion int64) error
}
