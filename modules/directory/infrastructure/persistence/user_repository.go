package persistence

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dailysync/sdk/modules/directory/domain/aggregates/user"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/mapping"
)

const (
	userFindQuery = `
		SELECT id, org_id, email, full_name, dept_id, team_id,
			role_archetype_code, work_schedule, version, created_at, updated_at
		FROM users`

	userInsertQuery = `
		INSERT INTO users (
			id, org_id, email, full_name, dept_id, team_id,
			role_archetype_code, work_schedule, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	userUpdateQuery = `
		UPDATE users
		SET full_name = $2, dept_id = $3, team_id = $4,
			role_archetype_code = $5, updated_at = now()
		WHERE id = $1`

	userCountQuery = `SELECT COUNT(*) FROM users WHERE org_id = $1`

	userUpdateScheduleQuery = `
		UPDATE users
		SET work_schedule = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`

	uniqueViolationCode = "23505"
)

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*user.User, error) {
	users, err := r.query(ctx, userFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, user.ErrNotFound
	}
	if users[0].OrgID() != orgID {
		return nil, user.ErrTenantMismatch
	}
	return users[0], nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*user.User, error) {
	users, err := r.query(ctx, userFindQuery+" WHERE org_id = $1 AND email = $2", orgID.String(), email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, user.ErrNotFound
	}
	return users[0], nil
}

func (r *UserRepository) List(ctx context.Context, orgID uuid.UUID) ([]*user.User, error) {
	return r.query(ctx, userFindQuery+" WHERE org_id = $1 ORDER BY full_name", orgID.String())
}

func (r *UserRepository) Count(ctx context.Context, orgID uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}
	var count int64
	if err := tx.QueryRow(ctx, userCountQuery, orgID.String()).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	schedule, err := json.Marshal(u.WorkSchedule())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal work schedule")
	}
	if _, err := tx.Exec(
		ctx,
		userInsertQuery,
		u.ID().String(),
		u.OrgID().String(),
		u.Email(),
		u.FullName(),
		mapping.UUIDToSQLNullString(u.DeptID()),
		mapping.UUIDToSQLNullString(u.TeamID()),
		mapping.PointerToSQLNullString(u.RoleArchetypeCode()),
		schedule,
		u.Version(),
		u.CreatedAt(),
		u.UpdatedAt(),
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, user.ErrEmailTaken
		}
		return nil, errors.Wrap(err, "failed to insert user")
	}
	return r.GetByID(ctx, u.OrgID(), u.ID())
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if _, err := r.GetByID(ctx, u.OrgID(), u.ID()); err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(
		ctx,
		userUpdateQuery,
		u.ID().String(),
		u.FullName(),
		mapping.UUIDToSQLNullString(u.DeptID()),
		mapping.UUIDToSQLNullString(u.TeamID()),
		mapping.PointerToSQLNullString(u.RoleArchetypeCode()),
	); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	return r.GetByID(ctx, u.OrgID(), u.ID())
}

func (r *UserRepository) UpdateWorkSchedule(ctx context.Context, orgID, id uuid.UUID, schedule document.Document, expectedVersion int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	raw, err := json.Marshal(schedule)
	if err != nil {
		return errors.Wrap(err, "failed to marshal work schedule")
	}
	tag, err := tx.Exec(ctx, userUpdateScheduleQuery, id.String(), raw, expectedVersion)
	if err != nil {
		return errors.Wrap(err, "failed to update work schedule")
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, orgID, id); err != nil {
			return err
		}
		return user.ErrVersionConflict
	}
	return nil
}

func (r *UserRepository) query(ctx context.Context, query string, args ...interface{}) ([]*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.ID,
			&m.OrgID,
			&m.Email,
			&m.FullName,
			&m.DeptID,
			&m.TeamID,
			&m.RoleArchetypeCode,
			&m.WorkSchedule,
			&m.Version,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan user row")
		}
		u, err := toDomainUser(&m)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return users, nil
}
