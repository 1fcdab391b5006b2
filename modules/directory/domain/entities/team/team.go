package team

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users inside a department. Its deptID must resolve to a
// department under the same organization; cross-tenant pairing is rejected at
// creation, never silently corrected.
type Team struct {
	id          uuid.UUID
	orgID       uuid.UUID
	deptID      uuid.UUID
	name        string
	description string
	managerID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Team)

func WithID(id uuid.UUID) Option {
	return func(t *Team) {
		t.id = id
	}
}

func WithDescription(description string) Option {
	return func(t *Team) {
		t.description = description
	}
}

func WithManagerID(managerID *uuid.UUID) Option {
	return func(t *Team) {
		t.managerID = managerID
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(t *Team) {
		t.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(t *Team) {
		t.updatedAt = updatedAt
	}
}

func New(orgID, deptID uuid.UUID, name string, opts ...Option) *Team {
	t := &Team{
		id:        uuid.New(),
		orgID:     orgID,
		deptID:    deptID,
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Team) ID() uuid.UUID {
	return t.id
}

func (t *Team) OrgID() uuid.UUID {
	return t.orgID
}

func (t *Team) DeptID() uuid.UUID {
	return t.deptID
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) Description() string {
	return t.description
}

func (t *Team) ManagerID() *uuid.UUID {
	return t.managerID
}

func (t *Team) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Team) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Team) SetName(name string) {
	t.name = name
	t.updatedAt = time.Now()
}

func (t *Team) SetDescription(description string) {
	t.description = description
	t.updatedAt = time.Now()
}

func (t *Team) SetManagerID(managerID *uuid.UUID) {
	t.managerID = managerID
	t.updatedAt = time.Now()
}
