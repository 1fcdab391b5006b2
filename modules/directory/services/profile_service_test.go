package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	catalogservices "github.com/dailysync/sdk/modules/catalog/services"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/modules/directory/services"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

func newProfileService(
	users *userRepoStub,
	depts *deptRepoStub,
	teams *teamRepoStub,
	roles *roleArchetypeRepoStub,
	kpis *kpiTemplateRepoStub,
) *services.ProfileService {
	catalog := catalogservices.NewCatalogService(newDeptArchetypeRepoStub(), roles, kpis)
	return services.NewProfileService(users, depts, teams, catalog)
}

func TestResolveEffectiveProfile_UnassignedUserIsTerminal(t *testing.T) {
	org := organization.New("Acme")
	u := user.New(org.ID(), "new@acme.local", "New Hire")
	svc := newProfileService(newUserRepoStub(u), newDeptRepoStub(), newTeamRepoStub(), newRoleArchetypeRepoStub(), &kpiTemplateRepoStub{})

	profile, err := svc.ResolveEffectiveProfile(context.Background(), org.ID(), u.ID())

	require.NoError(t, err)
	require.Equal(t, u.ID(), profile.User.ID())
	require.Nil(t, profile.Department)
	require.Nil(t, profile.Team)
	require.Nil(t, profile.RoleArchetype)
	require.Empty(t, profile.KPITemplates)
	require.Nil(t, profile.ReportTemplate)
}

func TestResolveEffectiveProfile_FullAssignment(t *testing.T) {
	org := organization.New("Acme")
	sales := department.New(org.ID(), "Sales")
	squad := team.New(org.ID(), sales.ID(), "Inbound")

	k1 := kpitemplate.New("K1", "Revenue Closed", "USD", kpitemplate.HigherBetter, kpitemplate.Monthly)
	k2 := kpitemplate.New("K2", "Calls Made", "calls", kpitemplate.HigherBetter, kpitemplate.Daily)
	k3 := kpitemplate.New("K3", "Churn", "%", kpitemplate.LowerBetter, kpitemplate.Monthly)
	report := document.Document{"sections": []any{"wins", "blockers"}}
	role := rolearchetype.New(
		"SALES_AE", "Account Executive", rolearchetype.LevelIC, uuid.New(),
		rolearchetype.WithKPITemplateIDs([]uuid.UUID{k1.ID(), k2.ID(), k3.ID()}),
		rolearchetype.WithReportTemplate(report),
	)

	code := "SALES_AE"
	deptID := sales.ID()
	teamID := squad.ID()
	u := user.New(
		org.ID(), "ae@acme.local", "Dana Fields",
		user.WithDeptID(&deptID),
		user.WithTeamID(&teamID),
		user.WithRoleArchetypeCode(&code),
	)

	svc := newProfileService(
		newUserRepoStub(u),
		newDeptRepoStub(sales),
		newTeamRepoStub(squad),
		newRoleArchetypeRepoStub(role),
		&kpiTemplateRepoStub{byRole: map[string][]*kpitemplate.KPITemplate{
			"SALES_AE": {k1, k2, k3},
		}},
	)

	profile, err := svc.ResolveEffectiveProfile(context.Background(), org.ID(), u.ID())

	require.NoError(t, err)
	require.Equal(t, sales.ID(), profile.Department.ID())
	require.Equal(t, squad.ID(), profile.Team.ID())
	require.Equal(t, "SALES_AE", profile.RoleArchetype.Code())
	require.Equal(t, report, profile.ReportTemplate)
	// KPI order is the archetype's declared order, not alphabetical.
	require.Equal(t, "K1", profile.KPITemplates[0].Code())
	require.Equal(t, "K2", profile.KPITemplates[1].Code())
	require.Equal(t, "K3", profile.KPITemplates[2].Code())
}

func TestResolveEffectiveProfile_CatalogDriftDegrades(t *testing.T) {
	org := organization.New("Acme")
	code := "RETIRED_ROLE"
	u := user.New(org.ID(), "old@acme.local", "Old Timer", user.WithRoleArchetypeCode(&code))
	svc := newProfileService(newUserRepoStub(u), newDeptRepoStub(), newTeamRepoStub(), newRoleArchetypeRepoStub(), &kpiTemplateRepoStub{})

	profile, err := svc.ResolveEffectiveProfile(context.Background(), org.ID(), u.ID())

	require.NoError(t, err, "drift degrades, it never fails the read")
	require.Nil(t, profile.RoleArchetype)
	require.Empty(t, profile.KPITemplates)
}

func TestResolveEffectiveProfile_DanglingDepartmentDegrades(t *testing.T) {
	org := organization.New("Acme")
	goneDept := uuid.New()
	u := user.New(org.ID(), "x@acme.local", "X", user.WithDeptID(&goneDept))
	svc := newProfileService(newUserRepoStub(u), newDeptRepoStub(), newTeamRepoStub(), newRoleArchetypeRepoStub(), &kpiTemplateRepoStub{})

	profile, err := svc.ResolveEffectiveProfile(context.Background(), org.ID(), u.ID())

	require.NoError(t, err)
	require.Nil(t, profile.Department)
}

func TestResolveEffectiveProfile_UserMustExistInOrg(t *testing.T) {
	orgA := organization.New("Org A")
	orgB := organization.New("Org B")
	u := user.New(orgB.ID(), "b@b.local", "B User")
	svc := newProfileService(newUserRepoStub(u), newDeptRepoStub(), newTeamRepoStub(), newRoleArchetypeRepoStub(), &kpiTemplateRepoStub{})

	_, err := svc.ResolveEffectiveProfile(context.Background(), orgA.ID(), uuid.New())
	require.True(t, serrors.IsNotFound(err))

	_, err = svc.ResolveEffectiveProfile(context.Background(), orgA.ID(), u.ID())
	require.True(t, serrors.IsTenantMismatch(err))
}
