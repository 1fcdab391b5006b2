package seed

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/infrastructure/persistence"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/configuration"
)

// CreateBuiltInCatalog seeds the global archetype catalog inside a single
// transaction. Safe to run on every deploy: all writes upsert by code.
func CreateBuiltInCatalog(ctx context.Context) error {
	logger := configuration.Use().Logger()
	seeder := persistence.NewCatalogSeeder()

	return composables.InTx(ctx, func(txCtx context.Context) error {
		kpiIDs := make(map[string]uuid.UUID)

		for _, dept := range BuiltInDepartments() {
			deptID, err := seeder.UpsertDepartmentArchetype(txCtx, departmentarchetype.New(
				dept.Code,
				dept.Name,
				departmentarchetype.WithDescription(dept.Description),
			))
			if err != nil {
				return err
			}

			for _, role := range dept.Roles {
				roleKPIIDs := make([]uuid.UUID, 0, len(role.KPIs))
				for _, kpi := range role.KPIs {
					id, ok := kpiIDs[kpi.Code]
					if !ok {
						var err error
						id, err = seeder.UpsertKPITemplate(txCtx, kpitemplate.New(
							kpi.Code,
							kpi.Name,
							kpi.Unit,
							kpi.Direction,
							kpi.Frequency,
						))
						if err != nil {
							return err
						}
						kpiIDs[kpi.Code] = id
					}
					roleKPIIDs = append(roleKPIIDs, id)
				}

				if _, err := seeder.UpsertRoleArchetype(txCtx, &persistence.RoleArchetypeSeed{
					Code:                  role.Code,
					Name:                  role.Name,
					Level:                 string(role.Level),
					DepartmentArchetypeID: deptID,
					Description:           role.Description,
					ReportTemplate:        baseReportTemplate(),
					KPITemplateIDs:        roleKPIIDs,
				}); err != nil {
					return err
				}
			}

			logger.Infof("Seeded department archetype %s with %d roles", dept.Code, len(dept.Roles))
		}
		return nil
	})
}
