package serrors_test

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/dailysync/sdk/pkg/serrors"
)

func TestPredicates_MatchOnlyTheirCode(t *testing.T) {
	notFound := serrors.NewNotFound("department")
	mismatch := serrors.NewTenantMismatch("department")

	require.True(t, serrors.IsNotFound(notFound))
	require.False(t, serrors.IsTenantMismatch(notFound))
	require.True(t, serrors.IsTenantMismatch(mismatch))
	require.False(t, serrors.IsNotFound(mismatch))
	require.True(t, serrors.IsConflict(serrors.NewConflict("organization")))
	require.True(t, serrors.IsValidation(serrors.NewValidation("bad input")))
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	err := errors.Wrap(serrors.NewNotFound("team"), "loading team")

	require.True(t, serrors.IsNotFound(err))
	require.False(t, serrors.IsConflict(err))
}

func TestValidationErrors_ErrorMessage(t *testing.T) {
	errs := serrors.ValidationErrors{
		"Email": serrors.NewValidation("field Email failed on the required rule"),
	}

	require.Contains(t, errs.Error(), "Email")
}
