package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/eventbus"
	"github.com/dailysync/sdk/pkg/serrors"
)

type DepartmentService struct {
	depts      department.Repository
	orgs       organization.Repository
	users      user.Repository
	archetypes departmentarchetype.Repository
	publisher  eventbus.EventBus
}

func NewDepartmentService(
	depts department.Repository,
	orgs organization.Repository,
	users user.Repository,
	archetypes departmentarchetype.Repository,
	publisher eventbus.EventBus,
) *DepartmentService {
	return &DepartmentService{
		depts:      depts,
		orgs:       orgs,
		users:      users,
		archetypes: archetypes,
		publisher:  publisher,
	}
}

func (s *DepartmentService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*department.Department, error) {
	return s.depts.GetByID(ctx, orgID, id)
}

func (s *DepartmentService) List(ctx context.Context, orgID uuid.UUID) ([]*department.Department, error) {
	return s.depts.List(ctx, orgID)
}

func (s *DepartmentService) Create(ctx context.Context, orgID uuid.UUID, data *department.CreateDTO) (*department.Department, error) {
	if errs, ok := data.Ok(); !ok {
		return nil, errs
	}
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (*department.Department, error) {
		if _, err := s.orgs.GetByID(txCtx, orgID); err != nil {
			return nil, err
		}
		if data.ArchetypeCode != nil {
			if err := s.ensureArchetypeCode(txCtx, *data.ArchetypeCode); err != nil {
				return nil, err
			}
		}
		if data.ManagerID != nil {
			if _, err := s.users.GetByID(txCtx, orgID, *data.ManagerID); err != nil {
				return nil, err
			}
		}
		return s.depts.Create(txCtx, data.ToEntity(orgID))
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&department.CreatedEvent{Result: created})
	return created, nil
}

func (s *DepartmentService) Update(ctx context.Context, orgID, id uuid.UUID, data *department.UpdateDTO) (*department.Department, error) {
	if errs, ok := data.Ok(); !ok {
		return nil, errs
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*department.Department, error) {
		dept, err := s.depts.GetByID(txCtx, orgID, id)
		if err != nil {
			return nil, err
		}
		// The manager must resolve inside the same organization.
		if data.ManagerID != nil {
			if _, err := s.users.GetByID(txCtx, orgID, *data.ManagerID); err != nil {
				return nil, err
			}
		}
		data.Apply(dept)
		return s.depts.Update(txCtx, dept)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&department.UpdatedEvent{Result: updated})
	return updated, nil
}

// Delete removes an empty department. Deleting while users are still
// assigned is rejected; the caller reassigns them first.
func (s *DepartmentService) Delete(ctx context.Context, orgID, id uuid.UUID) (*department.Department, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (*department.Department, error) {
		dept, err := s.depts.GetByID(txCtx, orgID, id)
		if err != nil {
			return nil, err
		}
		count, err := s.depts.CountUsers(txCtx, orgID, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, serrors.NewValidation("department still has assigned users")
		}
		if err := s.depts.Delete(txCtx, orgID, id); err != nil {
			return nil, err
		}
		return dept, nil
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&department.DeletedEvent{Result: deleted})
	return deleted, nil
}

func (s *DepartmentService) ensureArchetypeCode(ctx context.Context, code string) error {
	_, err := s.archetypes.GetByCode(ctx, code)
	if serrors.IsNotFound(err) {
		return serrors.NewValidation("unknown department archetype code: " + code)
	}
	return err
}
