package kpitemplate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/pkg/serrors"
)

func TestParseDirection(t *testing.T) {
	for _, value := range []string{"HIGHER_BETTER", "LOWER_BETTER", "TARGET_VALUE"} {
		direction, err := kpitemplate.ParseDirection(value)
		require.NoError(t, err)
		require.Equal(t, value, string(direction))
	}

	_, err := kpitemplate.ParseDirection("UPWARD")
	require.True(t, serrors.IsValidation(err))
}

func TestParseFrequency(t *testing.T) {
	for _, value := range []string{"DAILY", "WEEKLY", "MONTHLY"} {
		frequency, err := kpitemplate.ParseFrequency(value)
		require.NoError(t, err)
		require.Equal(t, value, string(frequency))
	}

	_, err := kpitemplate.ParseFrequency("QUARTERLY")
	require.True(t, serrors.IsValidation(err))
}
