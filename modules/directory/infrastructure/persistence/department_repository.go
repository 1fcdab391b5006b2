package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/directory/domain/entities/department"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/mapping"
)

const (
	departmentFindQuery = `
		SELECT id, org_id, name, description, archetype_code, manager_id,
			created_at, updated_at
		FROM departments`

	departmentInsertQuery = `
		INSERT INTO departments (
			id, org_id, name, description, archetype_code, manager_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	departmentUpdateQuery = `
		UPDATE departments
		SET name = $2, description = $3, archetype_code = $4, manager_id = $5,
			updated_at = now()
		WHERE id = $1`

	departmentDeleteQuery = `DELETE FROM departments WHERE id = $1`

	departmentCountUsersQuery = `SELECT COUNT(*) FROM users WHERE org_id = $1 AND dept_id = $2`
)

type DepartmentRepository struct{}

func NewDepartmentRepository() department.Repository {
	return &DepartmentRepository{}
}

// GetByID looks the department up by id alone, then checks ownership. A hit
// under another organization is a tenant mismatch, not a not-found; callers
// collapse the two at the edge but log them differently.
func (r *DepartmentRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*department.Department, error) {
	depts, err := r.query(ctx, departmentFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(depts) == 0 {
		return nil, department.ErrNotFound
	}
	if depts[0].OrgID() != orgID {
		return nil, department.ErrTenantMismatch
	}
	return depts[0], nil
}

func (r *DepartmentRepository) List(ctx context.Context, orgID uuid.UUID) ([]*department.Department, error) {
	return r.query(ctx, departmentFindQuery+" WHERE org_id = $1 ORDER BY name", orgID.String())
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) (*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(
		ctx,
		departmentInsertQuery,
		d.ID().String(),
		d.OrgID().String(),
		d.Name(),
		d.Description(),
		mapping.PointerToSQLNullString(d.ArchetypeCode()),
		mapping.UUIDToSQLNullString(d.ManagerID()),
		d.CreatedAt(),
		d.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert department")
	}
	return r.GetByID(ctx, d.OrgID(), d.ID())
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) (*department.Department, error) {
	if _, err := r.GetByID(ctx, d.OrgID(), d.ID()); err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(
		ctx,
		departmentUpdateQuery,
		d.ID().String(),
		d.Name(),
		d.Description(),
		mapping.PointerToSQLNullString(d.ArchetypeCode()),
		mapping.UUIDToSQLNullString(d.ManagerID()),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update department")
	}
	return r.GetByID(ctx, d.OrgID(), d.ID())
}

func (r *DepartmentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(ctx, departmentDeleteQuery, id.String()); err != nil {
		return errors.Wrap(err, "failed to delete department")
	}
	return nil
}

func (r *DepartmentRepository) CountUsers(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}
	var count int64
	if err := tx.QueryRow(ctx, departmentCountUsersQuery, orgID.String(), id.String()).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count department users")
	}
	return count, nil
}

func (r *DepartmentRepository) query(ctx context.Context, query string, args ...interface{}) ([]*department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var depts []*department.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(
			&m.ID,
			&m.OrgID,
			&m.Name,
			&m.Description,
			&m.ArchetypeCode,
			&m.ManagerID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan department row")
		}
		dept, err := toDomainDepartment(&m)
		if err != nil {
			return nil, err
		}
		depts = append(depts, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return depts, nil
}
