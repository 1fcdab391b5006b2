package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/document"
)

// User belongs to exactly one organization. Department and team are nullable
// weak references inside the same organization; the role archetype is a code
// into the global catalog. Organizations never fork archetypes — per-user
// customization lives in the workSchedule document.
type User struct {
	id                uuid.UUID
	orgID             uuid.UUID
	email             string
	fullName          string
	deptID            *uuid.UUID
	teamID            *uuid.UUID
	roleArchetypeCode *string
	workSchedule      document.Document
	version           int64
	createdAt         time.Time
	updatedAt         time.Time
}

type Option func(*User)

func WithID(id uuid.UUID) Option {
	return func(u *User) {
		u.id = id
	}
}

func WithDeptID(deptID *uuid.UUID) Option {
	return func(u *User) {
		u.deptID = deptID
	}
}

func WithTeamID(teamID *uuid.UUID) Option {
	return func(u *User) {
		u.teamID = teamID
	}
}

func WithRoleArchetypeCode(code *string) Option {
	return func(u *User) {
		u.roleArchetypeCode = code
	}
}

func WithWorkSchedule(schedule document.Document) Option {
	return func(u *User) {
		u.workSchedule = schedule
	}
}

func WithVersion(version int64) Option {
	return func(u *User) {
		u.version = version
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *User) {
		u.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(u *User) {
		u.updatedAt = updatedAt
	}
}

func New(orgID uuid.UUID, email, fullName string, opts ...Option) *User {
	u := &User{
		id:           uuid.New(),
		orgID:        orgID,
		email:        email,
		fullName:     fullName,
		workSchedule: document.Document{},
		version:      1,
		createdAt:    time.Now(),
		updatedAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) OrgID() uuid.UUID {
	return u.orgID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) DeptID() *uuid.UUID {
	return u.deptID
}

func (u *User) TeamID() *uuid.UUID {
	return u.teamID
}

func (u *User) RoleArchetypeCode() *string {
	return u.roleArchetypeCode
}

func (u *User) WorkSchedule() document.Document {
	return u.workSchedule
}

func (u *User) Version() int64 {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetFullName(fullName string) {
	u.fullName = fullName
	u.updatedAt = time.Now()
}

// AssignDepartment moves the user to a department, optionally changing the
// role archetype. Team membership is deliberately untouched: clearing it is a
// policy choice the caller must make explicitly.
func (u *User) AssignDepartment(deptID uuid.UUID, roleArchetypeCode *string) {
	u.deptID = &deptID
	if roleArchetypeCode != nil {
		u.roleArchetypeCode = roleArchetypeCode
	}
	u.updatedAt = time.Now()
}

func (u *User) AssignTeam(teamID uuid.UUID) {
	u.teamID = &teamID
	u.updatedAt = time.Now()
}

func (u *User) ClearTeam() {
	u.teamID = nil
	u.updatedAt = time.Now()
}
