package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	catalogpersistence "github.com/dailysync/sdk/modules/catalog/infrastructure/persistence"
	catalogservices "github.com/dailysync/sdk/modules/catalog/services"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence"
	"github.com/dailysync/sdk/modules/directory/services"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/configuration"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/eventbus"
)

// newDemoCmd wires the full service graph and provisions a small demo tenant
// against an already migrated and catalog-seeded database.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create a demo organization with departments, teams and users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			pool, err := pgxpool.New(cmd.Context(), conf.Database.Opts)
			if err != nil {
				return err
			}
			defer pool.Close()
			ctx := composables.WithPool(cmd.Context(), pool)

			publisher := eventbus.NewEventPublisher(logger)
			publisher.Subscribe(func(event *user.DepartmentAssignedEvent) {
				logger.Infof("assigned %s to department", event.Result.Email())
			})

			orgs := persistence.NewOrganizationRepository()
			depts := persistence.NewDepartmentRepository()
			teams := persistence.NewTeamRepository()
			users := persistence.NewUserRepository()
			deptArchetypes := catalogpersistence.NewDepartmentArchetypeRepository()
			roleArchetypes := catalogpersistence.NewRoleArchetypeRepository()
			kpiTemplates := catalogpersistence.NewKPITemplateRepository()
			catalog := catalogservices.NewCatalogService(deptArchetypes, roleArchetypes, kpiTemplates)

			orgService := services.NewOrganizationService(orgs, publisher, conf.PolicyMergeRetries)
			deptService := services.NewDepartmentService(depts, orgs, users, deptArchetypes, publisher)
			userService := services.NewUserService(users, orgs, roleArchetypes, publisher, conf.PolicyMergeRetries)
			assignments := services.NewAssignmentService(users, depts, teams, roleArchetypes, publisher)
			profiles := services.NewProfileService(users, depts, teams, catalog)

			org, err := orgService.Create(ctx, &organization.CreateDTO{Name: "Demo Rockets"})
			if err != nil {
				return err
			}

			salesCode := "SALES"
			sales, err := deptService.Create(ctx, org.ID(), &department.CreateDTO{
				Name:          "Sales",
				ArchetypeCode: &salesCode,
			})
			if err != nil {
				return err
			}

			account, err := userService.Create(ctx, org.ID(), &user.CreateDTO{
				Email:    "dana@demo.local",
				FullName: "Dana Fields",
			})
			if err != nil {
				return err
			}

			roleCode := "SALES_AE"
			if _, err := assignments.AssignUserToDepartment(ctx, org.ID(), account.ID(), sales.ID(), &roleCode); err != nil {
				return err
			}
			inbound, err := assignments.CreateTeam(ctx, org.ID(), sales.ID(), nil, "Inbound", "inbound pipeline")
			if err != nil {
				return err
			}
			if _, err := assignments.AssignUserToTeam(ctx, org.ID(), account.ID(), inbound.ID()); err != nil {
				return err
			}

			if _, err := orgService.UpdateAIPolicy(ctx, org.ID(), document.Document{
				"provider": "openai",
				"tone":     "formal",
			}); err != nil {
				return err
			}

			profile, err := profiles.ResolveEffectiveProfile(ctx, org.ID(), account.ID())
			if err != nil {
				return err
			}
			roleName := "unassigned"
			if profile.RoleArchetype != nil {
				roleName = profile.RoleArchetype.Name()
			}
			logger.Infof(
				"demo org %q ready: %s resolves to %s with %d KPI templates",
				org.Slug(), account.Email(), roleName, len(profile.KPITemplates),
			)
			return nil
		},
	}
}
