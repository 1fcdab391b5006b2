package departmentarchetype

import "context"

// Repository reads the global department archetype catalog. There is no
// tenant parameter anywhere: the catalog is shared reference data.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*DepartmentArchetype, error)
	List(ctx context.Context) ([]*DepartmentArchetype, error)
}
