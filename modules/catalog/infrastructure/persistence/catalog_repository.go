package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/modules/catalog/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/composables"
)

const (
	departmentArchetypeFindQuery = `
		SELECT id, code, name, description
		FROM department_archetypes`

	departmentArchetypeExistsQuery = `SELECT 1 FROM department_archetypes WHERE code = $1`

	roleArchetypeFindQuery = `
		SELECT
			r.id,
			r.code,
			r.name,
			r.level,
			r.department_archetype_id,
			d.code,
			r.description,
			r.report_template
		FROM role_archetypes r
		JOIN department_archetypes d ON d.id = r.department_archetype_id`

	roleArchetypeExistsQuery = `SELECT 1 FROM role_archetypes WHERE code = $1`

	roleKPITemplateIDsQuery = `
		SELECT kpi_template_id
		FROM role_archetype_kpi_templates
		WHERE role_archetype_id = $1
		ORDER BY position`

	kpiTemplatesForRoleQuery = `
		SELECT k.id, k.code, k.name, k.unit, k.direction, k.frequency
		FROM role_archetype_kpi_templates rk
		JOIN kpi_templates k ON k.id = rk.kpi_template_id
		JOIN role_archetypes r ON r.id = rk.role_archetype_id
		WHERE r.code = $1
		ORDER BY rk.position`
)

// The catalog repositories serve the immutable global taxonomy. There is no
// tenant parameter anywhere; writes happen only through the seed path.

type DepartmentArchetypeRepository struct{}

func NewDepartmentArchetypeRepository() departmentarchetype.Repository {
	return &DepartmentArchetypeRepository{}
}

func (r *DepartmentArchetypeRepository) GetByCode(ctx context.Context, code string) (*departmentarchetype.DepartmentArchetype, error) {
	archetypes, err := queryDepartmentArchetypes(ctx, departmentArchetypeFindQuery+" WHERE code = $1", code)
	if err != nil {
		return nil, err
	}
	if len(archetypes) == 0 {
		return nil, departmentarchetype.ErrNotFound
	}
	return archetypes[0], nil
}

func (r *DepartmentArchetypeRepository) List(ctx context.Context) ([]*departmentarchetype.DepartmentArchetype, error) {
	return queryDepartmentArchetypes(ctx, departmentArchetypeFindQuery+" ORDER BY name")
}

type RoleArchetypeRepository struct{}

func NewRoleArchetypeRepository() rolearchetype.Repository {
	return &RoleArchetypeRepository{}
}

func (r *RoleArchetypeRepository) GetByCode(ctx context.Context, code string) (*rolearchetype.RoleArchetype, error) {
	roles, err := queryRoleArchetypes(ctx, roleArchetypeFindQuery+" WHERE r.code = $1", code)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, rolearchetype.ErrNotFound
	}
	return roles[0], nil
}

func (r *RoleArchetypeRepository) ListByDepartment(ctx context.Context, departmentArchetypeCode string) ([]*rolearchetype.RoleArchetype, error) {
	if err := ensureCatalogCode(ctx, departmentArchetypeExistsQuery, departmentArchetypeCode, departmentarchetype.ErrNotFound); err != nil {
		return nil, err
	}
	return queryRoleArchetypes(ctx, roleArchetypeFindQuery+" WHERE d.code = $1 ORDER BY r.name", departmentArchetypeCode)
}

type KPITemplateRepository struct{}

func NewKPITemplateRepository() kpitemplate.Repository {
	return &KPITemplateRepository{}
}

func (r *KPITemplateRepository) GetForRole(ctx context.Context, roleArchetypeCode string) ([]*kpitemplate.KPITemplate, error) {
	if err := ensureCatalogCode(ctx, roleArchetypeExistsQuery, roleArchetypeCode, rolearchetype.ErrNotFound); err != nil {
		return nil, err
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, kpiTemplatesForRoleQuery, roleArchetypeCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query kpi templates")
	}
	defer rows.Close()

	var templates []*kpitemplate.KPITemplate
	for rows.Next() {
		var m models.KPITemplate
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Unit, &m.Direction, &m.Frequency); err != nil {
			return nil, errors.Wrap(err, "failed to scan kpi template row")
		}
		template, err := toDomainKPITemplate(&m)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return templates, nil
}

func ensureCatalogCode(ctx context.Context, query, code string, notFound error) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, query, code)
	if err != nil {
		return errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return errors.Wrap(err, "row iteration error")
		}
		return notFound
	}
	return rows.Err()
}

func queryDepartmentArchetypes(ctx context.Context, query string, args ...interface{}) ([]*departmentarchetype.DepartmentArchetype, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var archetypes []*departmentarchetype.DepartmentArchetype
	for rows.Next() {
		var m models.DepartmentArchetype
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Description); err != nil {
			return nil, errors.Wrap(err, "failed to scan department archetype row")
		}
		archetype, err := toDomainDepartmentArchetype(&m)
		if err != nil {
			return nil, err
		}
		archetypes = append(archetypes, archetype)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return archetypes, nil
}

func queryRoleArchetypes(ctx context.Context, query string, args ...interface{}) ([]*rolearchetype.RoleArchetype, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var rowModels []models.RoleArchetype
	for rows.Next() {
		var m models.RoleArchetype
		if err := rows.Scan(
			&m.ID,
			&m.Code,
			&m.Name,
			&m.Level,
			&m.DepartmentArchetypeID,
			&m.DepartmentArchetypeCode,
			&m.Description,
			&m.ReportTemplate,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan role archetype row")
		}
		rowModels = append(rowModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	roles := make([]*rolearchetype.RoleArchetype, 0, len(rowModels))
	for i := range rowModels {
		kpiIDs, err := queryRoleKPITemplateIDs(ctx, rowModels[i].ID)
		if err != nil {
			return nil, err
		}
		role, err := toDomainRoleArchetype(&rowModels[i], kpiIDs)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func queryRoleKPITemplateIDs(ctx context.Context, roleID string) ([]uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, roleKPITemplateIDsQuery, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query kpi template ids")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "failed to scan kpi template id")
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid kpi template id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return ids, nil
}
