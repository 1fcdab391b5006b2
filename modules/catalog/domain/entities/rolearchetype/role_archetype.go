package rolearchetype

import (
	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound = serrors.NewNotFound("role archetype")
)

// RoleArchetype is a global role template belonging to a department
// archetype. Tenants reference it by code and never fork or mutate it;
// per-organization customization happens in policy documents only.
type RoleArchetype struct {
	id                      uuid.UUID
	code                    string
	name                    string
	level                   Level
	departmentArchetypeID   uuid.UUID
	departmentArchetypeCode string
	description             string
	kpiTemplateIDs          []uuid.UUID
	reportTemplate          document.Document
}

type Option func(*RoleArchetype)

func WithID(id uuid.UUID) Option {
	return func(r *RoleArchetype) {
		r.id = id
	}
}

func WithDescription(description string) Option {
	return func(r *RoleArchetype) {
		r.description = description
	}
}

// WithKPITemplateIDs sets the KPI template references. The slice order is the
// declared order and is significant for report rendering downstream.
func WithKPITemplateIDs(ids []uuid.UUID) Option {
	return func(r *RoleArchetype) {
		r.kpiTemplateIDs = ids
	}
}

func WithReportTemplate(template document.Document) Option {
	return func(r *RoleArchetype) {
		r.reportTemplate = template
	}
}

func WithDepartmentArchetypeCode(code string) Option {
	return func(r *RoleArchetype) {
		r.departmentArchetypeCode = code
	}
}

func New(code, name string, level Level, departmentArchetypeID uuid.UUID, opts ...Option) *RoleArchetype {
	r := &RoleArchetype{
		id:                    uuid.New(),
		code:                  code,
		name:                  name,
		level:                 level,
		departmentArchetypeID: departmentArchetypeID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RoleArchetype) ID() uuid.UUID {
	return r.id
}

func (r *RoleArchetype) Code() string {
	return r.code
}

func (r *RoleArchetype) Name() string {
	return r.name
}

func (r *RoleArchetype) Level() Level {
	return r.level
}

func (r *RoleArchetype) DepartmentArchetypeID() uuid.UUID {
	return r.departmentArchetypeID
}

func (r *RoleArchetype) DepartmentArchetypeCode() string {
	return r.departmentArchetypeCode
}

func (r *RoleArchetype) Description() string {
	return r.description
}

// KPITemplateIDs returns the KPI references in declared order.
func (r *RoleArchetype) KPITemplateIDs() []uuid.UUID {
	return r.kpiTemplateIDs
}

// ReportTemplate returns the optional report template document, nil when the
// archetype does not carry one.
func (r *RoleArchetype) ReportTemplate() document.Document {
	return r.reportTemplate
}
