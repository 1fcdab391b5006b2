package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/directory/domain/entities/team"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/mapping"
)

const (
	teamFindQuery = `
		SELECT id, org_id, dept_id, name, description, manager_id,
			created_at, updated_at
		FROM teams`

	teamInsertQuery = `
		INSERT INTO teams (
			id, org_id, dept_id, name, description, manager_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	teamUpdateQuery = `
		UPDATE teams
		SET dept_id = $2, name = $3, description = $4, manager_id = $5,
			updated_at = now()
		WHERE id = $1`

	teamDeleteQuery = `DELETE FROM teams WHERE id = $1`
)

type TeamRepository struct{}

func NewTeamRepository() team.Repository {
	return &TeamRepository{}
}

func (r *TeamRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*team.Team, error) {
	teams, err := r.query(ctx, teamFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, team.ErrNotFound
	}
	if teams[0].OrgID() != orgID {
		return nil, team.ErrTenantMismatch
	}
	return teams[0], nil
}

func (r *TeamRepository) List(ctx context.Context, orgID uuid.UUID) ([]*team.Team, error) {
	return r.query(ctx, teamFindQuery+" WHERE org_id = $1 ORDER BY name", orgID.String())
}

func (r *TeamRepository) ListByDepartment(ctx context.Context, orgID, deptID uuid.UUID) ([]*team.Team, error) {
	return r.query(
		ctx,
		teamFindQuery+" WHERE org_id = $1 AND dept_id = $2 ORDER BY name",
		orgID.String(),
		deptID.String(),
	)
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) (*team.Team, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(
		ctx,
		teamInsertQuery,
		t.ID().String(),
		t.OrgID().String(),
		t.DeptID().String(),
		t.Name(),
		t.Description(),
		mapping.UUIDToSQLNullString(t.ManagerID()),
		t.CreatedAt(),
		t.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert team")
	}
	return r.GetByID(ctx, t.OrgID(), t.ID())
}

func (r *TeamRepository) Update(ctx context.Context, t *team.Team) (*team.Team, error) {
	if _, err := r.GetByID(ctx, t.OrgID(), t.ID()); err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(
		ctx,
		teamUpdateQuery,
		t.ID().String(),
		t.DeptID().String(),
		t.Name(),
		t.Description(),
		mapping.UUIDToSQLNullString(t.ManagerID()),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update team")
	}
	return r.GetByID(ctx, t.OrgID(), t.ID())
}

func (r *TeamRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(ctx, teamDeleteQuery, id.String()); err != nil {
		return errors.Wrap(err, "failed to delete team")
	}
	return nil
}

func (r *TeamRepository) query(ctx context.Context, query string, args ...interface{}) ([]*team.Team, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var teams []*team.Team
	for rows.Next() {
		var m models.Team
		if err := rows.Scan(
			&m.ID,
			&m.OrgID,
			&m.DeptID,
			&m.Name,
			&m.Description,
			&m.ManagerID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan team row")
		}
		t, err := toDomainTeam(&m)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return teams, nil
}
