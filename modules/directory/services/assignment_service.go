package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/eventbus"
	"github.com/dailysync/sdk/pkg/serrors"
)

// AssignmentService performs the cross-entity mutations. Every operation runs
// the same sequence: tenant-scoped existence checks on each referenced
// entity, cross-entity consistency, then a single mutation. There are no
// cascades: reassigning a department leaves team membership alone, because a
// user may validly sit in a team of the department they just left.
type AssignmentService struct {
	users     user.Repository
	depts     department.Repository
	teams     team.Repository
	roles     rolearchetype.Repository
	publisher eventbus.EventBus
}

func NewAssignmentService(
	users user.Repository,
	depts department.Repository,
	teams team.Repository,
	roles rolearchetype.Repository,
	publisher eventbus.EventBus,
) *AssignmentService {
	return &AssignmentService{
		users:     users,
		depts:     depts,
		teams:     teams,
		roles:     roles,
		publisher: publisher,
	}
}

func (s *AssignmentService) AssignUserToDepartment(
	ctx context.Context,
	orgID, userID, deptID uuid.UUID,
	roleArchetypeCode *string,
) (*user.User, error) {
	if userID == uuid.Nil {
		return nil, serrors.NewValidation("userId is required")
	}
	if deptID == uuid.Nil {
		return nil, serrors.NewValidation("deptId is required")
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		u, err := s.users.GetByID(txCtx, orgID, userID)
		if err != nil {
			return nil, err
		}
		if _, err := s.depts.GetByID(txCtx, orgID, deptID); err != nil {
			return nil, err
		}
		if roleArchetypeCode != nil {
			if _, err := s.roles.GetByCode(txCtx, *roleArchetypeCode); err != nil {
				if serrors.IsNotFound(err) {
					return nil, serrors.NewValidation("unknown role archetype code: " + *roleArchetypeCode)
				}
				return nil, err
			}
		}
		u.AssignDepartment(deptID, roleArchetypeCode)
		return s.users.Update(txCtx, u)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.DepartmentAssignedEvent{Result: updated})
	return updated, nil
}

func (s *AssignmentService) AssignUserToTeam(ctx context.Context, orgID, userID, teamID uuid.UUID) (*user.User, error) {
	if userID == uuid.Nil {
		return nil, serrors.NewValidation("userId is required")
	}
	if teamID == uuid.Nil {
		return nil, serrors.NewValidation("teamId is required")
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		u, err := s.users.GetByID(txCtx, orgID, userID)
		if err != nil {
			return nil, err
		}
		if _, err := s.teams.GetByID(txCtx, orgID, teamID); err != nil {
			return nil, err
		}
		u.AssignTeam(teamID)
		return s.users.Update(txCtx, u)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.TeamAssignedEvent{Result: updated})
	return updated, nil
}

// RemoveUserFromTeam is the explicit counterpart of the missing cascade in
// AssignUserToDepartment: leaving a team is always a deliberate call, never a
// side effect. Idempotent for a user who is not on any team.
func (s *AssignmentService) RemoveUserFromTeam(ctx context.Context, orgID, userID uuid.UUID) (*user.User, error) {
	if userID == uuid.Nil {
		return nil, serrors.NewValidation("userId is required")
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		u, err := s.users.GetByID(txCtx, orgID, userID)
		if err != nil {
			return nil, err
		}
		u.ClearTeam()
		return s.users.Update(txCtx, u)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&user.TeamClearedEvent{Result: updated})
	return updated, nil
}

func (s *AssignmentService) CreateTeam(
	ctx context.Context,
	orgID, deptID uuid.UUID,
	managerID *uuid.UUID,
	name, description string,
) (*team.Team, error) {
	if name == "" {
		return nil, serrors.NewValidation("name is required")
	}
	if deptID == uuid.Nil {
		return nil, serrors.NewValidation("deptId is required")
	}
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (*team.Team, error) {
		// The department anchors the team inside the organization; a dept id
		// from another tenant fails here before anything is written.
		if _, err := s.depts.GetByID(txCtx, orgID, deptID); err != nil {
			return nil, err
		}
		if managerID != nil {
			if _, err := s.users.GetByID(txCtx, orgID, *managerID); err != nil {
				return nil, err
			}
		}
		return s.teams.Create(txCtx, team.New(
			orgID,
			deptID,
			name,
			team.WithDescription(description),
			team.WithManagerID(managerID),
		))
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&team.CreatedEvent{Result: created})
	return created, nil
}

func (s *AssignmentService) UpdateTeam(
	ctx context.Context,
	orgID, teamID uuid.UUID,
	name, description string,
	managerID *uuid.UUID,
) (*team.Team, error) {
	if name == "" {
		return nil, serrors.NewValidation("name is required")
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*team.Team, error) {
		t, err := s.teams.GetByID(txCtx, orgID, teamID)
		if err != nil {
			return nil, err
		}
		if managerID != nil {
			if _, err := s.users.GetByID(txCtx, orgID, *managerID); err != nil {
				return nil, err
			}
		}
		t.SetName(name)
		t.SetDescription(description)
		t.SetManagerID(managerID)
		return s.teams.Update(txCtx, t)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&team.UpdatedEvent{Result: updated})
	return updated, nil
}

// DeleteTeam removes the team only. Users who pointed at it keep their other
// assignments; the database clears the dangling reference.
func (s *AssignmentService) DeleteTeam(ctx context.Context, orgID, teamID uuid.UUID) (*team.Team, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (*team.Team, error) {
		t, err := s.teams.GetByID(txCtx, orgID, teamID)
		if err != nil {
			return nil, err
		}
		if err := s.teams.Delete(txCtx, orgID, teamID); err != nil {
			return nil, err
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&team.DeletedEvent{Result: deleted})
	return deleted, nil
}

func (s *AssignmentService) ListTeamsByDepartment(ctx context.Context, orgID, deptID uuid.UUID) ([]*team.Team, error) {
	if _, err := s.depts.GetByID(ctx, orgID, deptID); err != nil {
		return nil, err
	}
	return s.teams.ListByDepartment(ctx, orgID, deptID)
}
