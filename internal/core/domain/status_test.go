package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequisitionStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected"} {
		got, err := ParseRequisitionStatus(valid)
		require.NoError(t, err, "status %q must parse", valid)
		assert.Equal(t, valid, got.String())
	}

	// empty input falls back to pending
	got, err := ParseRequisitionStatus("")
	require.NoError(t, err)
	assert.Equal(t, RequisitionPending, got)

	for _, invalid := range []string{"bogus", "PENDING", "Approved", "delivered", " pending"} {
		_, err := ParseRequisitionStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q must be rejected", invalid)
	}
}

func TestParseLPOStatus(t *testing.T) {
	for _, valid := range []string{"pending", "delivered", "not_delivered"} {
		got, err := ParseLPOStatus(valid)
		require.NoError(t, err, "status %q must parse", valid)
		assert.Equal(t, valid, got.String())
	}

	got, err := ParseLPOStatus("")
	require.NoError(t, err)
	assert.Equal(t, LPOPending, got)

	for _, invalid := range []string{"approved", "shipped", "DELIVERED", "not-delivered"} {
		_, err := ParseLPOStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q must be rejected", invalid)
	}
}
