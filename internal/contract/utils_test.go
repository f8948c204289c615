package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "True", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}

	for _, s := range []string{"no", "NO", "false", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}

	_, err := ParseBoolString("maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean string")

	_, err = ParseBoolString("")
	assert.Error(t, err)
}

func TestGetLedgerDBFilePath(t *testing.T) {
	path := GetLedgerDBFilePath()

	assert.True(t, strings.HasSuffix(path, ".footprint_ledger.db"))
}
