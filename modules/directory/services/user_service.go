package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/eventbus"
	"github.com/dailysync/sdk/pkg/serrors"
)

type UserService struct {
	users        user.Repository
	orgs         organization.Repository
	roles        rolearchetype.Repository
	publisher    eventbus.EventBus
	mergeRetries int
}

func NewUserService(
	users user.Repository,
	orgs organization.Repository,
	roles rolearchetype.Repository,
	publisher eventbus.EventBus,
	mergeRetries int,
) *UserService {
	if mergeRetries <= 0 {
		mergeRetries = defaultMergeRetries
	}
	return &UserService{
		users:        users,
		orgs:         orgs,
		roles:        roles,
		publisher:    publisher,
		mergeRetries: mergeRetries,
	}
}

func (s *UserService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, orgID, id)
}

func (s *UserService) GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*user.User, error) {
	return s.users.GetByEmail(ctx, orgID, email)
}

func (s *UserService) List(ctx context.Context, orgID uuid.UUID) ([]*user.User, error) {
	return s.users.List(ctx, orgID)
}

func (s *UserService) Create(ctx context.Context, orgID uuid.UUID, data *user.CreateDTO) (*user.User, error) {
	if errs, ok := data.Ok(); !ok {
		return nil, errs
	}
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		org, err := s.orgs.GetByID(txCtx, orgID)
		if err != nil {
			return nil, err
		}
		count, err := s.users.Count(txCtx, orgID)
		if err != nil {
			return nil, err
		}
		if count >= int64(org.MaxUsers()) {
			return nil, serrors.NewValidation("organization user limit reached")
		}
		if data.RoleArchetypeCode != nil {
			if err := s.ensureRoleCode(txCtx, *data.RoleArchetypeCode); err != nil {
				return nil, err
			}
		}
		// The unique index on (org_id, email) backs this up under races.
		if _, err := s.users.GetByEmail(txCtx, orgID, data.Email); err == nil {
			return nil, user.ErrEmailTaken
		} else if !serrors.IsNotFound(err) {
			return nil, err
		}
		return s.users.Create(txCtx, data.ToEntity(orgID))
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.CreatedEvent{Result: created})
	return created, nil
}

// UpdateWorkSchedule merges the patch into the user's work schedule with the
// same optimistic cycle the organization documents use.
func (s *UserService) UpdateWorkSchedule(ctx context.Context, orgID, id uuid.UUID, patch document.Document) (*user.User, error) {
	var lastErr error
	for attempt := 0; attempt < s.mergeRetries; attempt++ {
		updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
			u, err := s.users.GetByID(txCtx, orgID, id)
			if err != nil {
				return nil, err
			}
			merged := document.Merge(u.WorkSchedule(), patch)
			if err := s.users.UpdateWorkSchedule(txCtx, orgID, id, merged, u.Version()); err != nil {
				return nil, err
			}
			return s.users.GetByID(txCtx, orgID, id)
		})
		if err == nil {
			s.publisher.Publish(&user.WorkScheduleUpdatedEvent{Result: updated, WorkSchedule: updated.WorkSchedule()})
			return updated, nil
		}
		if !serrors.IsConflict(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *UserService) ensureRoleCode(ctx context.Context, code string) error {
	_, err := s.roles.GetByCode(ctx, code)
	if serrors.IsNotFound(err) {
		return serrors.NewValidation("unknown role archetype code: " + code)
	}
	return err
}
