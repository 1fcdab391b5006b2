package services_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/pkg/document"
)

// In-memory repositories backing the service tests. They mirror the tenant
// scoping of the real ones: lookups by id alone, ownership checked after.

type orgRepoStub struct {
	byID map[uuid.UUID]*organization.Organization
	// userCount feeds CountUsers without a user repository.
	userCount int64
	// conflictsToInject makes the next N conditional updates fail as if a
	// concurrent writer won the race.
	conflictsToInject int
}

func newOrgRepoStub(orgs ...*organization.Organization) *orgRepoStub {
	s := &orgRepoStub{byID: map[uuid.UUID]*organization.Organization{}}
	for _, org := range orgs {
		s.byID[org.ID()] = org
	}
	return s
}

func (s *orgRepoStub) GetByID(_ context.Context, id uuid.UUID) (*organization.Organization, error) {
	org, ok := s.byID[id]
	if !ok {
		return nil, organization.ErrNotFound
	}
	return org, nil
}

func (s *orgRepoStub) GetBySlug(_ context.Context, slug string) (*organization.Organization, error) {
	for _, org := range s.byID {
		if org.Slug() == slug {
			return org, nil
		}
	}
	return nil, organization.ErrNotFound
}

func (s *orgRepoStub) List(_ context.Context) ([]*organization.Organization, error) {
	out := make([]*organization.Organization, 0, len(s.byID))
	for _, org := range s.byID {
		out = append(out, org)
	}
	return out, nil
}

func (s *orgRepoStub) Create(_ context.Context, org *organization.Organization) (*organization.Organization, error) {
	s.byID[org.ID()] = org
	return org, nil
}

func (s *orgRepoStub) Update(_ context.Context, org *organization.Organization) (*organization.Organization, error) {
	if _, ok := s.byID[org.ID()]; !ok {
		return nil, organization.ErrNotFound
	}
	s.byID[org.ID()] = org
	return org, nil
}

func (s *orgRepoStub) CountUsers(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.userCount, nil
}

func (s *orgRepoStub) UpdateSettings(_ context.Context, id uuid.UUID, settings document.Document, expectedVersion int64) error {
	org, ok := s.byID[id]
	if !ok {
		return organization.ErrNotFound
	}
	if s.conflictsToInject > 0 {
		s.conflictsToInject--
		return organization.ErrVersionConflict
	}
	if org.Version() != expectedVersion {
		return organization.ErrVersionConflict
	}
	s.byID[id] = rebuildOrg(org, settings, org.AIPolicy(), expectedVersion+1)
	return nil
}

func (s *orgRepoStub) UpdateAIPolicy(_ context.Context, id uuid.UUID, aiPolicy document.Document, expectedVersion int64) error {
	org, ok := s.byID[id]
	if !ok {
		return organization.ErrNotFound
	}
	if s.conflictsToInject > 0 {
		s.conflictsToInject--
		return organization.ErrVersionConflict
	}
	if org.Version() != expectedVersion {
		return organization.ErrVersionConflict
	}
	s.byID[id] = rebuildOrg(org, org.Settings(), aiPolicy, expectedVersion+1)
	return nil
}

func rebuildOrg(org *organization.Organization, settings, aiPolicy document.Document, version int64) *organization.Organization {
	return organization.New(
		org.Name(),
		organization.WithID(org.ID()),
		organization.WithSlug(org.Slug()),
		organization.WithPlan(org.Plan()),
		organization.WithTimezone(org.Timezone()),
		organization.WithStatus(org.Status()),
		organization.WithMaxUsers(org.MaxUsers()),
		organization.WithMaxProjects(org.MaxProjects()),
		organization.WithSettings(settings),
		organization.WithAIPolicy(aiPolicy),
		organization.WithVersion(version),
	)
}

type deptRepoStub struct {
	byID map[uuid.UUID]*department.Department
	// assignedUsers drives the delete guard.
	assignedUsers map[uuid.UUID]int64
}

func newDeptRepoStub(depts ...*department.Department) *deptRepoStub {
	s := &deptRepoStub{
		byID:          map[uuid.UUID]*department.Department{},
		assignedUsers: map[uuid.UUID]int64{},
	}
	for _, dept := range depts {
		s.byID[dept.ID()] = dept
	}
	return s
}

func (s *deptRepoStub) GetByID(_ context.Context, orgID, id uuid.UUID) (*department.Department, error) {
	dept, ok := s.byID[id]
	if !ok {
		return nil, department.ErrNotFound
	}
	if dept.OrgID() != orgID {
		return nil, department.ErrTenantMismatch
	}
	return dept, nil
}

func (s *deptRepoStub) List(_ context.Context, orgID uuid.UUID) ([]*department.Department, error) {
	var out []*department.Department
	for _, dept := range s.byID {
		if dept.OrgID() == orgID {
			out = append(out, dept)
		}
	}
	return out, nil
}

func (s *deptRepoStub) Create(_ context.Context, d *department.Department) (*department.Department, error) {
	s.byID[d.ID()] = d
	return d, nil
}

func (s *deptRepoStub) Update(ctx context.Context, d *department.Department) (*department.Department, error) {
	if _, err := s.GetByID(ctx, d.OrgID(), d.ID()); err != nil {
		return nil, err
	}
	s.byID[d.ID()] = d
	return d, nil
}

func (s *deptRepoStub) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	delete(s.byID, id)
	return nil
}

func (s *deptRepoStub) CountUsers(_ context.Context, _, id uuid.UUID) (int64, error) {
	return s.assignedUsers[id], nil
}

type teamRepoStub struct {
	byID map[uuid.UUID]*team.Team
}

func newTeamRepoStub(teams ...*team.Team) *teamRepoStub {
	s := &teamRepoStub{byID: map[uuid.UUID]*team.Team{}}
	for _, t := range teams {
		s.byID[t.ID()] = t
	}
	return s
}

func (s *teamRepoStub) GetByID(_ context.Context, orgID, id uuid.UUID) (*team.Team, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, team.ErrNotFound
	}
	if t.OrgID() != orgID {
		return nil, team.ErrTenantMismatch
	}
	return t, nil
}

func (s *teamRepoStub) List(_ context.Context, orgID uuid.UUID) ([]*team.Team, error) {
	var out []*team.Team
	for _, t := range s.byID {
		if t.OrgID() == orgID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *teamRepoStub) ListByDepartment(_ context.Context, orgID, deptID uuid.UUID) ([]*team.Team, error) {
	var out []*team.Team
	for _, t := range s.byID {
		if t.OrgID() == orgID && t.DeptID() == deptID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *teamRepoStub) Create(_ context.Context, t *team.Team) (*team.Team, error) {
	s.byID[t.ID()] = t
	return t, nil
}

func (s *teamRepoStub) Update(ctx context.Context, t *team.Team) (*team.Team, error) {
	if _, err := s.GetByID(ctx, t.OrgID(), t.ID()); err != nil {
		return nil, err
	}
	s.byID[t.ID()] = t
	return t, nil
}

func (s *teamRepoStub) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	delete(s.byID, id)
	return nil
}

type userRepoStub struct {
	byID              map[uuid.UUID]*user.User
	conflictsToInject int
}

func newUserRepoStub(users ...*user.User) *userRepoStub {
	s := &userRepoStub{byID: map[uuid.UUID]*user.User{}}
	for _, u := range users {
		s.byID[u.ID()] = u
	}
	return s
}

func (s *userRepoStub) GetByID(_ context.Context, orgID, id uuid.UUID) (*user.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	if u.OrgID() != orgID {
		return nil, user.ErrTenantMismatch
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, orgID uuid.UUID, email string) (*user.User, error) {
	for _, u := range s.byID {
		if u.OrgID() == orgID && u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *userRepoStub) List(_ context.Context, orgID uuid.UUID) ([]*user.User, error) {
	var out []*user.User
	for _, u := range s.byID {
		if u.OrgID() == orgID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userRepoStub) Count(_ context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	for _, u := range s.byID {
		if u.OrgID() == orgID {
			count++
		}
	}
	return count, nil
}

func (s *userRepoStub) Create(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range s.byID {
		if existing.OrgID() == u.OrgID() && existing.Email() == u.Email() {
			return nil, user.ErrEmailTaken
		}
	}
	s.byID[u.ID()] = u
	return u, nil
}

func (s *userRepoStub) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if _, err := s.GetByID(ctx, u.OrgID(), u.ID()); err != nil {
		return nil, err
	}
	s.byID[u.ID()] = u
	return u, nil
}

func (s *userRepoStub) UpdateWorkSchedule(ctx context.Context, orgID, id uuid.UUID, schedule document.Document, expectedVersion int64) error {
	u, err := s.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if s.conflictsToInject > 0 {
		s.conflictsToInject--
		return user.ErrVersionConflict
	}
	if u.Version() != expectedVersion {
		return user.ErrVersionConflict
	}
	s.byID[id] = user.New(
		u.OrgID(),
		u.Email(),
		u.FullName(),
		user.WithID(u.ID()),
		user.WithDeptID(u.DeptID()),
		user.WithTeamID(u.TeamID()),
		user.WithRoleArchetypeCode(u.RoleArchetypeCode()),
		user.WithWorkSchedule(schedule),
		user.WithVersion(expectedVersion+1),
	)
	return nil
}

type deptArchetypeRepoStub struct {
	byCode map[string]*departmentarchetype.DepartmentArchetype
}

func newDeptArchetypeRepoStub(archetypes ...*departmentarchetype.DepartmentArchetype) *deptArchetypeRepoStub {
	s := &deptArchetypeRepoStub{byCode: map[string]*departmentarchetype.DepartmentArchetype{}}
	for _, a := range archetypes {
		s.byCode[a.Code()] = a
	}
	return s
}

func (s *deptArchetypeRepoStub) GetByCode(_ context.Context, code string) (*departmentarchetype.DepartmentArchetype, error) {
	a, ok := s.byCode[code]
	if !ok {
		return nil, departmentarchetype.ErrNotFound
	}
	return a, nil
}

func (s *deptArchetypeRepoStub) List(_ context.Context) ([]*departmentarchetype.DepartmentArchetype, error) {
	out := make([]*departmentarchetype.DepartmentArchetype, 0, len(s.byCode))
	for _, a := range s.byCode {
		out = append(out, a)
	}
	return out, nil
}

type roleArchetypeRepoStub struct {
	byCode map[string]*rolearchetype.RoleArchetype
}

func newRoleArchetypeRepoStub(roles ...*rolearchetype.RoleArchetype) *roleArchetypeRepoStub {
	s := &roleArchetypeRepoStub{byCode: map[string]*rolearchetype.RoleArchetype{}}
	for _, r := range roles {
		s.byCode[r.Code()] = r
	}
	return s
}

func (s *roleArchetypeRepoStub) GetByCode(_ context.Context, code string) (*rolearchetype.RoleArchetype, error) {
	r, ok := s.byCode[code]
	if !ok {
		return nil, rolearchetype.ErrNotFound
	}
	return r, nil
}

func (s *roleArchetypeRepoStub) ListByDepartment(_ context.Context, code string) ([]*rolearchetype.RoleArchetype, error) {
	var out []*rolearchetype.RoleArchetype
	for _, r := range s.byCode {
		if r.DepartmentArchetypeCode() == code {
			out = append(out, r)
		}
	}
	return out, nil
}

type kpiTemplateRepoStub struct {
	byRole map[string][]*kpitemplate.KPITemplate
}

func (s *kpiTemplateRepoStub) GetForRole(_ context.Context, roleArchetypeCode string) ([]*kpitemplate.KPITemplate, error) {
	templates, ok := s.byRole[roleArchetypeCode]
	if !ok {
		return nil, rolearchetype.ErrNotFound
	}
	return templates, nil
}

type publisherStub struct {
	events []interface{}
}

func (p *publisherStub) Publish(args ...interface{}) {
	p.events = append(p.events, args...)
}

func (p *publisherStub) Subscribe(interface{})   {}
func (p *publisherStub) Unsubscribe(interface{}) {}
func (p *publisherStub) Clear()                  { p.events = nil }
func (p *publisherStub) SubscribersCount() int   { return 0 }
