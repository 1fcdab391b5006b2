package organization

import (
	"time"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/document"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// Organization is the tenant boundary. Departments, teams, and users live
// under exactly one organization and are never shared across it.
//
// settings and aiPolicy are schemaless documents mutated only through the
// merge engine; the aggregate carries a version for the optimistic
// read-merge-write cycle.
type Organization struct {
	id          uuid.UUID
	name        string
	slug        string
	plan        string
	timezone    string
	status      Status
	maxUsers    int
	maxProjects int
	settings    document.Document
	aiPolicy    document.Document
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Organization)

func WithID(id uuid.UUID) Option {
	return func(o *Organization) {
		o.id = id
	}
}

func WithSlug(slug string) Option {
	return func(o *Organization) {
		o.slug = slug
	}
}

func WithPlan(plan string) Option {
	return func(o *Organization) {
		o.plan = plan
	}
}

func WithTimezone(timezone string) Option {
	return func(o *Organization) {
		o.timezone = timezone
	}
}

func WithStatus(status Status) Option {
	return func(o *Organization) {
		o.status = status
	}
}

func WithMaxUsers(maxUsers int) Option {
	return func(o *Organization) {
		o.maxUsers = maxUsers
	}
}

func WithMaxProjects(maxProjects int) Option {
	return func(o *Organization) {
		o.maxProjects = maxProjects
	}
}

func WithSettings(settings document.Document) Option {
	return func(o *Organization) {
		o.settings = settings
	}
}

func WithAIPolicy(aiPolicy document.Document) Option {
	return func(o *Organization) {
		o.aiPolicy = aiPolicy
	}
}

func WithVersion(version int64) Option {
	return func(o *Organization) {
		o.version = version
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(o *Organization) {
		o.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(o *Organization) {
		o.updatedAt = updatedAt
	}
}

func New(name string, opts ...Option) *Organization {
	o := &Organization{
		id:          uuid.New(),
		name:        name,
		plan:        "FREE",
		timezone:    "UTC",
		status:      StatusActive,
		maxUsers:    25,
		maxProjects: 10,
		settings:    document.Document{},
		aiPolicy:    document.Document{},
		version:     1,
		createdAt:   time.Now(),
		updatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Organization) ID() uuid.UUID {
	return o.id
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) Slug() string {
	return o.slug
}

func (o *Organization) Plan() string {
	return o.plan
}

func (o *Organization) Timezone() string {
	return o.timezone
}

func (o *Organization) Status() Status {
	return o.status
}

func (o *Organization) MaxUsers() int {
	return o.maxUsers
}

func (o *Organization) MaxProjects() int {
	return o.maxProjects
}

func (o *Organization) Settings() document.Document {
	return o.settings
}

func (o *Organization) AIPolicy() document.Document {
	return o.aiPolicy
}

func (o *Organization) Version() int64 {
	return o.version
}

func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Organization) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Organization) SetName(name string) {
	o.name = name
	o.updatedAt = time.Now()
}

func (o *Organization) SetPlan(plan string) {
	o.plan = plan
	o.updatedAt = time.Now()
}

func (o *Organization) SetTimezone(timezone string) {
	o.timezone = timezone
	o.updatedAt = time.Now()
}

func (o *Organization) SetStatus(status Status) {
	o.status = status
	o.updatedAt = time.Now()
}

func (o *Organization) SetMaxUsers(maxUsers int) {
	o.maxUsers = maxUsers
	o.updatedAt = time.Now()
}
