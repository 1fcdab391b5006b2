package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/services"
	"github.com/dailysync/sdk/pkg/serrors"
)

type departmentFixture struct {
	svc   *services.DepartmentService
	depts *deptRepoStub
	users *userRepoStub
	org   *organization.Organization
}

func newDepartmentFixture() *departmentFixture {
	org := organization.New("Acme")
	depts := newDeptRepoStub()
	users := newUserRepoStub()
	archetypes := newDeptArchetypeRepoStub(departmentarchetype.New("SALES", "Sales"))
	svc := services.NewDepartmentService(depts, newOrgRepoStub(org), users, archetypes, &publisherStub{})
	return &departmentFixture{svc: svc, depts: depts, users: users, org: org}
}

func TestDepartmentCreate_WithCatalogArchetype(t *testing.T) {
	f := newDepartmentFixture()
	code := "SALES"

	created, err := f.svc.Create(context.Background(), f.org.ID(), &department.CreateDTO{
		Name:          "Sales",
		ArchetypeCode: &code,
	})

	require.NoError(t, err)
	require.Equal(t, "SALES", *created.ArchetypeCode())
}

func TestDepartmentCreate_UnknownArchetypeCode(t *testing.T) {
	f := newDepartmentFixture()
	code := "NOPE"

	_, err := f.svc.Create(context.Background(), f.org.ID(), &department.CreateDTO{
		Name:          "Sales",
		ArchetypeCode: &code,
	})

	require.True(t, serrors.IsValidation(err))
}

func TestDepartmentCreate_UnknownOrganization(t *testing.T) {
	f := newDepartmentFixture()
	ghost := organization.New("Ghost")

	_, err := f.svc.Create(context.Background(), ghost.ID(), &department.CreateDTO{Name: "Sales"})

	require.True(t, serrors.IsNotFound(err))
}

func TestDepartmentUpdate_ManagerMustBeInOrg(t *testing.T) {
	f := newDepartmentFixture()
	dept, err := f.svc.Create(context.Background(), f.org.ID(), &department.CreateDTO{Name: "Sales"})
	require.NoError(t, err)

	orgB := organization.New("Org B")
	stranger := user.New(orgB.ID(), "bob@b.local", "Bob")
	_, err = f.users.Create(context.Background(), stranger)
	require.NoError(t, err)

	strangerID := stranger.ID()
	_, err = f.svc.Update(context.Background(), f.org.ID(), dept.ID(), &department.UpdateDTO{
		Name:      "Sales",
		ManagerID: &strangerID,
	})

	require.True(t, serrors.IsTenantMismatch(err))
}

func TestDepartmentDelete_BlockedWhileUsersAssigned(t *testing.T) {
	f := newDepartmentFixture()
	dept, err := f.svc.Create(context.Background(), f.org.ID(), &department.CreateDTO{Name: "Sales"})
	require.NoError(t, err)
	f.depts.assignedUsers[dept.ID()] = 2

	_, err = f.svc.Delete(context.Background(), f.org.ID(), dept.ID())

	require.True(t, serrors.IsValidation(err))
	_, err = f.svc.GetByID(context.Background(), f.org.ID(), dept.ID())
	require.NoError(t, err, "blocked delete must leave the department in place")
}

func TestDepartmentDelete_EmptyDepartment(t *testing.T) {
	f := newDepartmentFixture()
	dept, err := f.svc.Create(context.Background(), f.org.ID(), &department.CreateDTO{Name: "Sales"})
	require.NoError(t, err)

	_, err = f.svc.Delete(context.Background(), f.org.ID(), dept.ID())
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), f.org.ID(), dept.ID())
	require.True(t, serrors.IsNotFound(err))
}

func TestDepartmentGetByID_TenantScoped(t *testing.T) {
	f := newDepartmentFixture()
	orgB := organization.New("Org B")
	foreign := department.New(orgB.ID(), "Foreign")
	_, err := f.depts.Create(context.Background(), foreign)
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), f.org.ID(), foreign.ID())

	require.True(t, serrors.IsTenantMismatch(err))
}
