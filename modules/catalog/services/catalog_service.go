package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
)

// CatalogService is the read surface over the global archetype catalog.
// Listing order is part of the contract: downstream rendering assumes it and
// must not re-sort.
type CatalogService struct {
	departments departmentarchetype.Repository
	roles       rolearchetype.Repository
	kpis        kpitemplate.Repository
}

func NewCatalogService(
	departments departmentarchetype.Repository,
	roles rolearchetype.Repository,
	kpis kpitemplate.Repository,
) *CatalogService {
	return &CatalogService{
		departments: departments,
		roles:       roles,
		kpis:        kpis,
	}
}

func (s *CatalogService) GetDepartmentArchetype(ctx context.Context, code string) (*departmentarchetype.DepartmentArchetype, error) {
	return s.departments.GetByCode(ctx, code)
}

// ListDepartmentArchetypes returns all department archetypes sorted by name.
func (s *CatalogService) ListDepartmentArchetypes(ctx context.Context) ([]*departmentarchetype.DepartmentArchetype, error) {
	archetypes, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(archetypes, func(i, j int) bool {
		return archetypes[i].Name() < archetypes[j].Name()
	})
	return archetypes, nil
}

func (s *CatalogService) GetRoleArchetype(ctx context.Context, code string) (*rolearchetype.RoleArchetype, error) {
	return s.roles.GetByCode(ctx, code)
}

// ListRoleArchetypesByDepartment returns the roles of a department archetype
// sorted by level ascending (IC first), then name ascending.
func (s *CatalogService) ListRoleArchetypesByDepartment(ctx context.Context, departmentArchetypeCode string) ([]*rolearchetype.RoleArchetype, error) {
	roles, err := s.roles.ListByDepartment(ctx, departmentArchetypeCode)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roles, func(i, j int) bool {
		if roles[i].Level().Rank() != roles[j].Level().Rank() {
			return roles[i].Level().Rank() < roles[j].Level().Rank()
		}
		return roles[i].Name() < roles[j].Name()
	})
	return roles, nil
}

// GetKPITemplatesForRole returns the role's KPI templates deduplicated,
// preserving the order declared on the archetype.
func (s *CatalogService) GetKPITemplatesForRole(ctx context.Context, roleArchetypeCode string) ([]*kpitemplate.KPITemplate, error) {
	templates, err := s.kpis.GetForRole(ctx, roleArchetypeCode)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(templates))
	deduplicated := make([]*kpitemplate.KPITemplate, 0, len(templates))
	for _, template := range templates {
		if _, ok := seen[template.ID()]; ok {
			continue
		}
		seen[template.ID()] = struct{}{}
		deduplicated = append(deduplicated, template)
	}
	return deduplicated, nil
}
