package kpitemplate

import "context"

type Repository interface {
	// GetForRole returns the KPI templates referenced by a role archetype in
	// the order declared on the archetype. Fails with
	// rolearchetype.ErrNotFound when the role code is unknown.
	GetForRole(ctx context.Context, roleArchetypeCode string) ([]*KPITemplate, error)
}
