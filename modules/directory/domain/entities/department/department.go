package department

import (
	"time"

	"github.com/google/uuid"
)

// Department is owned by exactly one organization and is never referenced
// from another. It may point at a department archetype from the global
// catalog by code.
type Department struct {
	id            uuid.UUID
	orgID         uuid.UUID
	name          string
	description   string
	archetypeCode *string
	managerID     *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

type Option func(*Department)

func WithID(id uuid.UUID) Option {
	return func(d *Department) {
		d.id = id
	}
}

func WithDescription(description string) Option {
	return func(d *Department) {
		d.description = description
	}
}

func WithArchetypeCode(code *string) Option {
	return func(d *Department) {
		d.archetypeCode = code
	}
}

func WithManagerID(managerID *uuid.UUID) Option {
	return func(d *Department) {
		d.managerID = managerID
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(d *Department) {
		d.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(d *Department) {
		d.updatedAt = updatedAt
	}
}

func New(orgID uuid.UUID, name string, opts ...Option) *Department {
	d := &Department{
		id:        uuid.New(),
		orgID:     orgID,
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Department) ID() uuid.UUID {
	return d.id
}

func (d *Department) OrgID() uuid.UUID {
	return d.orgID
}

func (d *Department) Name() string {
	return d.name
}

func (d *Department) Description() string {
	return d.description
}

func (d *Department) ArchetypeCode() *string {
	return d.archetypeCode
}

func (d *Department) ManagerID() *uuid.UUID {
	return d.managerID
}

func (d *Department) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Department) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Department) SetName(name string) {
	d.name = name
	d.updatedAt = time.Now()
}

func (d *Department) SetDescription(description string) {
	d.description = description
	d.updatedAt = time.Now()
}

func (d *Department) SetManagerID(managerID *uuid.UUID) {
	d.managerID = managerID
	d.updatedAt = time.Now()
}
