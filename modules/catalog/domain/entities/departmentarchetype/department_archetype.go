package departmentarchetype

import (
	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound = serrors.NewNotFound("department archetype")
)

// DepartmentArchetype is a global department template. Its code is the
// stable identity: numeric ids may change across re-seeds, codes never do
// once referenced.
type DepartmentArchetype struct {
	id          uuid.UUID
	code        string
	name        string
	description string
}

type Option func(*DepartmentArchetype)

func WithID(id uuid.UUID) Option {
	return func(d *DepartmentArchetype) {
		d.id = id
	}
}

func WithDescription(description string) Option {
	return func(d *DepartmentArchetype) {
		d.description = description
	}
}

func New(code, name string, opts ...Option) *DepartmentArchetype {
	d := &DepartmentArchetype{
		id:   uuid.New(),
		code: code,
		name: name,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DepartmentArchetype) ID() uuid.UUID {
	return d.id
}

func (d *DepartmentArchetype) Code() string {
	return d.code
}

func (d *DepartmentArchetype) Name() string {
	return d.name
}

func (d *DepartmentArchetype) Description() string {
	return d.description
}
