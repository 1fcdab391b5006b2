package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dailysync/sdk/modules/directory/domain/aggregates/organization"
	"github.com/dailysync/sdk/modules/directory/services"
	"github.com/dailysync/sdk/pkg/document"
	"github.com/dailysync/sdk/pkg/serrors"
)

func TestOrganizationCreate_GeneratesSlugFromName(t *testing.T) {
	repo := newOrgRepoStub()
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	org, err := svc.Create(context.Background(), &organization.CreateDTO{Name: "Acme Rocketry, Inc."})

	require.NoError(t, err)
	require.Equal(t, "acme-rocketry-inc", org.Slug())
}

func TestOrganizationCreate_GeneratedSlugCollisionGetsSuffix(t *testing.T) {
	existing := organization.New("Acme", organization.WithSlug("acme"))
	repo := newOrgRepoStub(existing)
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	org, err := svc.Create(context.Background(), &organization.CreateDTO{Name: "Acme"})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(org.Slug(), "acme-"))
	require.NotEqual(t, "acme", org.Slug())
}

func TestOrganizationCreate_ExplicitSlugTaken(t *testing.T) {
	existing := organization.New("Acme", organization.WithSlug("acme"))
	repo := newOrgRepoStub(existing)
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	_, err := svc.Create(context.Background(), &organization.CreateDTO{Name: "Other", Slug: "acme"})

	require.True(t, serrors.IsValidation(err))
}

func TestOrganizationCreate_MissingName(t *testing.T) {
	svc := services.NewOrganizationService(newOrgRepoStub(), &publisherStub{}, 3)

	_, err := svc.Create(context.Background(), &organization.CreateDTO{})

	var vErrs serrors.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	require.Contains(t, vErrs, "Name")
}

func TestUpdateAIPolicy_ShallowMerge(t *testing.T) {
	org := organization.New("Acme", organization.WithAIPolicy(document.Document{
		"provider": "openai",
		"tone":     "formal",
	}))
	repo := newOrgRepoStub(org)
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	updated, err := svc.UpdateAIPolicy(context.Background(), org.ID(), document.Document{"tone": "casual"})

	require.NoError(t, err)
	require.Equal(t, "openai", updated.AIPolicy()["provider"])
	require.Equal(t, "casual", updated.AIPolicy()["tone"])
	require.Equal(t, int64(2), updated.Version())
}

func TestUpdateSettings_RetriesThroughTransientConflict(t *testing.T) {
	org := organization.New("Acme", organization.WithSettings(document.Document{"theme": "dark"}))
	repo := newOrgRepoStub(org)
	repo.conflictsToInject = 2
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	updated, err := svc.UpdateSettings(context.Background(), org.ID(), document.Document{"locale": "en"})

	require.NoError(t, err)
	require.Equal(t, "dark", updated.Settings()["theme"])
	require.Equal(t, "en", updated.Settings()["locale"])
}

func TestUpdateSettings_RetryExhaustionIsConflict(t *testing.T) {
	org := organization.New("Acme")
	repo := newOrgRepoStub(org)
	repo.conflictsToInject = 3
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	_, err := svc.UpdateSettings(context.Background(), org.ID(), document.Document{"locale": "en"})

	require.True(t, serrors.IsConflict(err))
}

func TestUpdateSettings_UnknownOrganization(t *testing.T) {
	svc := services.NewOrganizationService(newOrgRepoStub(), &publisherStub{}, 3)

	_, err := svc.UpdateSettings(context.Background(), organization.New("ghost").ID(), document.Document{"a": 1})

	require.True(t, serrors.IsNotFound(err))
}

func TestCheckUserLimit(t *testing.T) {
	org := organization.New("Acme", organization.WithMaxUsers(2))
	repo := newOrgRepoStub(org)
	svc := services.NewOrganizationService(repo, &publisherStub{}, 3)

	repo.userCount = 1
	ok, err := svc.CheckUserLimit(context.Background(), org.ID())
	require.NoError(t, err)
	require.True(t, ok)

	repo.userCount = 2
	ok, err = svc.CheckUserLimit(context.Background(), org.ID())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "acme-rocketry", services.Slugify("Acme Rocketry"))
	require.Equal(t, "acme-rocketry", services.Slugify("  Acme -- Rocketry!  "))
	require.Equal(t, "a1-b2", services.Slugify("A1 & B2"))
	require.Equal(t, "", services.Slugify("!!!"))
}
