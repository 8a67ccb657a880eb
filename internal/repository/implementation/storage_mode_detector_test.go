package implementation

import (
	"database/sql"
	"errors"
	"testing"

	"ai-studymate-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeForColumnType(t *testing.T) {
	tests := []struct {
		udtName string
		want    contract.StorageMode
	}{
		{"vector", contract.StorageModeNativeVector},
		{"jsonb", contract.StorageModeGenericJSON},
		{"json", contract.StorageModeGenericJSON},
		{"text", contract.StorageModeUnavailable},
		{"", contract.StorageModeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.udtName, func(t *testing.T) {
			mode, err := classifyProbe(tt.udtName, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestClassifyProbeMissingColumnIsUnavailable(t *testing.T) {
	// An empty probe result means the table is not provisioned: the
	// feature is off, not broken.
	mode, err := classifyProbe("", sql.ErrNoRows)
	require.NoError(t, err)
	assert.Equal(t, contract.StorageModeUnavailable, mode)
}

func TestClassifyProbeConnectivityFailureIsAnError(t *testing.T) {
	// A connection failure must surface as an error so the store is not
	// permanently classified as unprovisioned by a transient outage.
	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	_, err := classifyProbe("", connErr)
	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
}
