package persistence

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/mapping"
)

func toDocument(raw []byte) (document.Document, error) {
	if len(raw) == 0 {
		return document.Document{}, nil
	}
	var doc document.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid json document")
	}
	if doc == nil {
		doc = document.Document{}
	}
	return doc, nil
}

func toDomainOrganization(m *models.Organization) (*organization.Organization, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid organization id")
	}
	settings, err := toDocument(m.Settings)
	if err != nil {
		return nil, err
	}
	aiPolicy, err := toDocument(m.AIPolicy)
	if err != nil {
		return nil, err
	}
	return organization.New(
		m.Name,
		organization.WithID(id),
		organization.WithSlug(m.Slug),
		organization.WithPlan(m.Plan),
		organization.WithTimezone(m.Timezone),
		organization.WithStatus(organization.Status(m.Status)),
		organization.WithMaxUsers(m.MaxUsers),
		organization.WithMaxProjects(m.MaxProjects),
		organization.WithSettings(settings),
		organization.WithAIPolicy(aiPolicy),
		organization.WithVersion(m.Version),
		organization.WithCreatedAt(m.CreatedAt),
		organization.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainDepartment(m *models.Department) (*department.Department, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid department id")
	}
	orgID, err := uuid.Parse(m.OrgID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid organization id")
	}
	return department.New(
		orgID,
		m.Name,
		department.WithID(id),
		department.WithDescription(m.Description),
		department.WithArchetypeCode(mapping.SQLNullStringToPointer(m.ArchetypeCode)),
		department.WithManagerID(mapping.SQLNullStringToUUID(m.ManagerID)),
		department.WithCreatedAt(m.CreatedAt),
		department.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainTeam(m *models.Team) (*team.Team, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid team id")
	}
	orgID, err := uuid.Parse(m.OrgID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid organization id")
	}
	deptID, err := uuid.Parse(m.DeptID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid department id")
	}
	return team.New(
		orgID,
		deptID,
		m.Name,
		team.WithID(id),
		team.WithDescription(m.Description),
		team.WithManagerID(mapping.SQLNullStringToUUID(m.ManagerID)),
		team.WithCreatedAt(m.CreatedAt),
		team.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainUser(m *models.User) (*user.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id")
	}
	orgID, err := uuid.Parse(m.OrgID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid organization id")
	}
	schedule, err := toDocument(m.WorkSchedule)
	if err != nil {
		return nil, err
	}
	return user.New(
		orgID,
		m.Email,
		m.FullName,
		user.WithID(id),
		user.WithDeptID(mapping.SQLNullStringToUUID(m.DeptID)),
		user.WithTeamID(mapping.SQLNullStringToUUID(m.TeamID)),
		user.WithRoleArchetypeCode(mapping.SQLNullStringToPointer(m.RoleArchetypeCode)),
		user.WithWorkSchedule(schedule),
		user.WithVersion(m.Version),
		user.WithCreatedAt(m.CreatedAt),
		user.WithUpdatedAt(m.UpdatedAt),
	), nil
}
