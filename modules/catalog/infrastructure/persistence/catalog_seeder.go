package persistence

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/document"
)

const (
	departmentArchetypeUpsertQuery = `
		INSERT INTO department_archetypes (id, code, name, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description
		RETURNING id`

	kpiTemplateUpsertQuery = `
		INSERT INTO kpi_templates (id, code, name, unit, direction, frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name,
		    unit = EXCLUDED.unit,
		    direction = EXCLUDED.direction,
		    frequency = EXCLUDED.frequency
		RETURNING id`

	roleArchetypeUpsertQuery = `
		INSERT INTO role_archetypes (id, code, name, level, department_archetype_id, description, report_template)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name,
		    level = EXCLUDED.level,
		    department_archetype_id = EXCLUDED.department_archetype_id,
		    description = EXCLUDED.description,
		    report_template = EXCLUDED.report_template
		RETURNING id`

	roleKPITemplatesDeleteQuery = `DELETE FROM role_archetype_kpi_templates WHERE role_archetype_id = $1`

	roleKPITemplateInsertQuery = `
		INSERT INTO role_archetype_kpi_templates (role_archetype_id, kpi_template_id, position)
		VALUES ($1, $2, $3)`
)

// CatalogSeeder is the only write path into the catalog tables. Everything
// upserts by code so re-seeding is idempotent and never touches tenant data.
type CatalogSeeder struct{}

func NewCatalogSeeder() *CatalogSeeder {
	return &CatalogSeeder{}
}

func (s *CatalogSeeder) UpsertDepartmentArchetype(ctx context.Context, d *departmentarchetype.DepartmentArchetype) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	var idStr string
	if err := tx.QueryRow(
		ctx,
		departmentArchetypeUpsertQuery,
		d.ID().String(),
		d.Code(),
		d.Name(),
		d.Description(),
	).Scan(&idStr); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to upsert department archetype")
	}
	return uuid.Parse(idStr)
}

func (s *CatalogSeeder) UpsertKPITemplate(ctx context.Context, k *kpitemplate.KPITemplate) (uuid.UUID, error) {
	// Enum values are rejected here, before any write: a bad row would
	// otherwise poison every subsequent catalog read.
	if _, err := kpitemplate.ParseDirection(string(k.Direction())); err != nil {
		return uuid.Nil, err
	}
	if _, err := kpitemplate.ParseFrequency(string(k.Frequency())); err != nil {
		return uuid.Nil, err
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	var idStr string
	if err := tx.QueryRow(
		ctx,
		kpiTemplateUpsertQuery,
		k.ID().String(),
		k.Code(),
		k.Name(),
		k.Unit(),
		string(k.Direction()),
		string(k.Frequency()),
	).Scan(&idStr); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to upsert kpi template")
	}
	return uuid.Parse(idStr)
}

type RoleArchetypeSeed struct {
	Code                  string
	Name                  string
	Level                 string
	DepartmentArchetypeID uuid.UUID
	Description           string
	ReportTemplate        document.Document
	KPITemplateIDs        []uuid.UUID
}

func (s *CatalogSeeder) UpsertRoleArchetype(ctx context.Context, seed *RoleArchetypeSeed) (uuid.UUID, error) {
	if _, err := rolearchetype.ParseLevel(seed.Level); err != nil {
		return uuid.Nil, err
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var template []byte
	if seed.ReportTemplate != nil {
		template, err = json.Marshal(seed.ReportTemplate)
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to marshal report template")
		}
	}

	var idStr string
	if err := tx.QueryRow(
		ctx,
		roleArchetypeUpsertQuery,
		uuid.New().String(),
		seed.Code,
		seed.Name,
		seed.Level,
		seed.DepartmentArchetypeID.String(),
		seed.Description,
		template,
	).Scan(&idStr); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to upsert role archetype")
	}
	roleID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, err
	}

	// Replace the KPI links wholesale so the declared order is exactly the
	// seed order.
	if _, err := tx.Exec(ctx, roleKPITemplatesDeleteQuery, roleID.String()); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to clear role kpi templates")
	}
	for position, kpiID := range seed.KPITemplateIDs {
		if _, err := tx.Exec(ctx, roleKPITemplateInsertQuery, roleID.String(), kpiID.String(), position); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to link role kpi template")
		}
	}
	return roleID, nil
}
