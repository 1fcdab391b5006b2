package rolearchetype

import "context"

type Repository interface {
	GetByCode(ctx context.Context, code string) (*RoleArchetype, error)
	// ListByDepartment returns the role archetypes of a department archetype
	// identified by its code. Fails with departmentarchetype.ErrNotFound when
	// the code is unknown.
	ListByDepartment(ctx context.Context, departmentArchetypeCode string) ([]*RoleArchetype, error)
}
