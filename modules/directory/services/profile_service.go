package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	catalogservices "github.com/dailysync/sdk/modules/catalog/services"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

// EffectiveProfile is the materialized view of a user's assignment combined
// with the global catalog. Nil Department, Team, and RoleArchetype are valid
// terminal states, not errors: the user is simply unassigned, or the catalog
// drifted since the assignment was made.
type EffectiveProfile struct {
	User           *user.User
	Department     *department.Department
	Team           *team.Team
	RoleArchetype  *rolearchetype.RoleArchetype
	KPITemplates   []*kpitemplate.KPITemplate
	ReportTemplate document.Document
}

type ProfileService struct {
	users   user.Repository
	depts   department.Repository
	teams   team.Repository
	catalog *catalogservices.CatalogService
}

func NewProfileService(
	users user.Repository,
	depts department.Repository,
	teams team.Repository,
	catalog *catalogservices.CatalogService,
) *ProfileService {
	return &ProfileService{
		users:   users,
		depts:   depts,
		teams:   teams,
		catalog: catalog,
	}
}

// ResolveEffectiveProfile loads the user and resolves each reference
// independently. Only the user itself is mandatory; every other leg degrades
// to absent when the referenced entity is gone or the role code no longer
// resolves in the catalog. KPI templates keep the order declared on the role
// archetype.
func (s *ProfileService) ResolveEffectiveProfile(ctx context.Context, orgID, userID uuid.UUID) (*EffectiveProfile, error) {
	u, err := s.users.GetByID(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	profile := &EffectiveProfile{
		User:         u,
		KPITemplates: []*kpitemplate.KPITemplate{},
	}

	if deptID := u.DeptID(); deptID != nil {
		dept, err := s.depts.GetByID(ctx, orgID, *deptID)
		switch {
		case err == nil:
			profile.Department = dept
		case !isDegradable(err):
			return nil, err
		}
	}

	if teamID := u.TeamID(); teamID != nil {
		t, err := s.teams.GetByID(ctx, orgID, *teamID)
		switch {
		case err == nil:
			profile.Team = t
		case !isDegradable(err):
			return nil, err
		}
	}

	code := u.RoleArchetypeCode()
	if code == nil {
		return profile, nil
	}
	role, err := s.catalog.GetRoleArchetype(ctx, *code)
	if err != nil {
		if isDegradable(err) {
			return profile, nil
		}
		return nil, err
	}
	profile.RoleArchetype = role
	profile.ReportTemplate = role.ReportTemplate()

	templates, err := s.catalog.GetKPITemplatesForRole(ctx, *code)
	if err != nil {
		if isDegradable(err) {
			return profile, nil
		}
		return nil, err
	}
	profile.KPITemplates = templates
	return profile, nil
}

// isDegradable reports whether a resolution leg may be dropped from the
// profile instead of failing the whole read. Dangling references and catalog
// drift qualify; infrastructure errors do not.
func isDegradable(err error) bool {
	return serrors.IsNotFound(err) || serrors.IsTenantMismatch(err)
}
