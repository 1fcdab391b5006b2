package persistence

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/document"
)

const (
	organizationFindQuery = `
		SELECT id, name, slug, plan, timezone, status, max_users, max_projects,
			settings, ai_policy, version, created_at, updated_at
		FROM organizations`

	organizationInsertQuery = `
		INSERT INTO organizations (
			id, name, slug, plan, timezone, status, max_users, max_projects,
			settings, ai_policy, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	organizationUpdateQuery = `
		UPDATE organizations
		SET name = $2, plan = $3, timezone = $4, status = $5,
			max_users = $6, max_projects = $7, updated_at = now()
		WHERE id = $1`

	organizationCountUsersQuery = `SELECT COUNT(*) FROM users WHERE org_id = $1`

	organizationUpdateSettingsQuery = `
		UPDATE organizations
		SET settings = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`

	organizationUpdateAIPolicyQuery = `
		UPDATE organizations
		SET ai_policy = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`
)

type OrganizationRepository struct{}

func NewOrganizationRepository() organization.Repository {
	return &OrganizationRepository{}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	orgs, err := r.query(ctx, organizationFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(orgs) == 0 {
		return nil, organization.ErrNotFound
	}
	return orgs[0], nil
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	orgs, err := r.query(ctx, organizationFindQuery+" WHERE slug = $1", slug)
	if err != nil {
		return nil, err
	}
	if len(orgs) == 0 {
		return nil, organization.ErrNotFound
	}
	return orgs[0], nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	return r.query(ctx, organizationFindQuery+" ORDER BY name")
}

func (r *OrganizationRepository) Create(ctx context.Context, org *organization.Organization) (*organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	settings, err := json.Marshal(org.Settings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal settings")
	}
	aiPolicy, err := json.Marshal(org.AIPolicy())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ai policy")
	}
	if _, err := tx.Exec(
		ctx,
		organizationInsertQuery,
		org.ID().String(),
		org.Name(),
		org.Slug(),
		org.Plan(),
		org.Timezone(),
		string(org.Status()),
		org.MaxUsers(),
		org.MaxProjects(),
		settings,
		aiPolicy,
		org.Version(),
		org.CreatedAt(),
		org.UpdatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert organization")
	}
	return r.GetByID(ctx, org.ID())
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) (*organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	tag, err := tx.Exec(
		ctx,
		organizationUpdateQuery,
		org.ID().String(),
		org.Name(),
		org.Plan(),
		org.Timezone(),
		string(org.Status()),
		org.MaxUsers(),
		org.MaxProjects(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update organization")
	}
	if tag.RowsAffected() == 0 {
		return nil, organization.ErrNotFound
	}
	return r.GetByID(ctx, org.ID())
}

func (r *OrganizationRepository) CountUsers(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}
	var count int64
	if err := tx.QueryRow(ctx, organizationCountUsersQuery, id.String()).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (r *OrganizationRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings document.Document, expectedVersion int64) error {
	return r.updateDocument(ctx, organizationUpdateSettingsQuery, id, settings, expectedVersion)
}

func (r *OrganizationRepository) UpdateAIPolicy(ctx context.Context, id uuid.UUID, aiPolicy document.Document, expectedVersion int64) error {
	return r.updateDocument(ctx, organizationUpdateAIPolicyQuery, id, aiPolicy, expectedVersion)
}

// updateDocument swaps a jsonb column only if the row is still at
// expectedVersion. Zero rows affected means either the organization vanished
// or someone else bumped the version first; the two are told apart with a
// follow-up read.
func (r *OrganizationRepository) updateDocument(ctx context.Context, query string, id uuid.UUID, doc document.Document, expectedVersion int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal document")
	}
	tag, err := tx.Exec(ctx, query, id.String(), raw, expectedVersion)
	if err != nil {
		return errors.Wrap(err, "failed to update document")
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return organization.ErrVersionConflict
	}
	return nil
}

func (r *OrganizationRepository) query(ctx context.Context, query string, args ...interface{}) ([]*organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var orgs []*organization.Organization
	for rows.Next() {
		var m models.Organization
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Slug,
			&m.Plan,
			&m.Timezone,
			&m.Status,
			&m.MaxUsers,
			&m.MaxProjects,
			&m.Settings,
			&m.AIPolicy,
			&m.Version,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan organization row")
		}
		org, err := toDomainOrganization(&m)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return orgs, nil
}
