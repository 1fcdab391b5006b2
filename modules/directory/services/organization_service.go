package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/eventbus"
	"github.com/dailysync/sdk/pkg/serrors"
)

const defaultMergeRetries = 3

// OrganizationService owns the tenant lifecycle and the two policy documents
// on the organization row. Document updates are read-merge-write cycles with
// a bounded optimistic retry; everything else is plain CRUD.
type OrganizationService struct {
	repo         organization.Repository
	publisher    eventbus.EventBus
	mergeRetries int
}

func NewOrganizationService(repo organization.Repository, publisher eventbus.EventBus, mergeRetries int) *OrganizationService {
	if mergeRetries <= 0 {
		mergeRetries = defaultMergeRetries
	}
	return &OrganizationService{
		repo:         repo,
		publisher:    publisher,
		mergeRetries: mergeRetries,
	}
}

func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrganizationService) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *OrganizationService) List(ctx context.Context) ([]*organization.Organization, error) {
	return s.repo.List(ctx)
}

func (s *OrganizationService) Create(ctx context.Context, data *organization.CreateDTO) (*organization.Organization, error) {
	if errs, ok := data.Ok(); !ok {
		return nil, errs
	}
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (*organization.Organization, error) {
		slug, err := s.resolveSlug(txCtx, data)
		if err != nil {
			return nil, err
		}
		opts := []organization.Option{organization.WithSlug(slug)}
		if data.Plan != "" {
			opts = append(opts, organization.WithPlan(data.Plan))
		}
		if data.Timezone != "" {
			opts = append(opts, organization.WithTimezone(data.Timezone))
		}
		return s.repo.Create(txCtx, organization.New(data.Name, opts...))
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&organization.CreatedEvent{Result: created})
	return created, nil
}

func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, data *organization.UpdateDTO) (*organization.Organization, error) {
	if errs, ok := data.Ok(); !ok {
		return nil, errs
	}
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (*organization.Organization, error) {
		org, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return nil, err
		}
		data.Apply(org)
		return s.repo.Update(txCtx, org)
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&organization.UpdatedEvent{Result: updated})
	return updated, nil
}

// CheckUserLimit reports whether the organization can take one more user.
func (s *OrganizationService) CheckUserLimit(ctx context.Context, id uuid.UUID) (bool, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	count, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return false, err
	}
	return count < int64(org.MaxUsers()), nil
}

func (s *OrganizationService) UpdateSettings(ctx context.Context, id uuid.UUID, patch document.Document) (*organization.Organization, error) {
	org, err := s.mergeDocument(
		ctx,
		id,
		patch,
		func(org *organization.Organization) document.Document { return org.Settings() },
		s.repo.UpdateSettings,
	)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&organization.SettingsUpdatedEvent{Result: org, Settings: org.Settings()})
	return org, nil
}

func (s *OrganizationService) UpdateAIPolicy(ctx context.Context, id uuid.UUID, patch document.Document) (*organization.Organization, error) {
	org, err := s.mergeDocument(
		ctx,
		id,
		patch,
		func(org *organization.Organization) document.Document { return org.AIPolicy() },
		s.repo.UpdateAIPolicy,
	)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&organization.AIPolicyUpdatedEvent{Result: org, AIPolicy: org.AIPolicy()})
	return org, nil
}

// mergeDocument runs the read-merge-write cycle. Each attempt reads the
// current document and version, merges the patch on top, and swaps
// conditionally; a version race burns one retry. Exhaustion surfaces the
// repository's conflict error unchanged.
func (s *OrganizationService) mergeDocument(
	ctx context.Context,
	id uuid.UUID,
	patch document.Document,
	current func(*organization.Organization) document.Document,
	swap func(ctx context.Context, id uuid.UUID, doc document.Document, expectedVersion int64) error,
) (*organization.Organization, error) {
	var lastErr error
	for attempt := 0; attempt < s.mergeRetries; attempt++ {
		org, err := composables.InTxResult(ctx, func(txCtx context.Context) (*organization.Organization, error) {
			org, err := s.repo.GetByID(txCtx, id)
			if err != nil {
				return nil, err
			}
			merged := document.Merge(current(org), patch)
			if err := swap(txCtx, id, merged, org.Version()); err != nil {
				return nil, err
			}
			return s.repo.GetByID(txCtx, id)
		})
		if err == nil {
			return org, nil
		}
		if !serrors.IsConflict(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// resolveSlug derives a unique slug. An explicitly requested slug must be
// free; a generated one gets a random suffix on collision.
func (s *OrganizationService) resolveSlug(ctx context.Context, data *organization.CreateDTO) (string, error) {
	if data.Slug != "" {
		if err := s.ensureSlugFree(ctx, data.Slug); err != nil {
			return "", err
		}
		return data.Slug, nil
	}

	slug := Slugify(data.Name)
	switch err := s.ensureSlugFree(ctx, slug); {
	case err == nil:
		return slug, nil
	case serrors.IsValidation(err):
		return slug + "-" + uuid.NewString()[:8], nil
	default:
		return "", err
	}
}

func (s *OrganizationService) ensureSlugFree(ctx context.Context, slug string) error {
	_, err := s.repo.GetBySlug(ctx, slug)
	if err == nil {
		return organization.ErrSlugTaken
	}
	if serrors.IsNotFound(err) {
		return nil
	}
	return err
}

// Slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single dash.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
