package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("$peci4lPASS#all")
	require.NoError(t, err)
	second, err := Hash("$peci4lPASS#all")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, Compare(first, "$peci4lPASS#all"))
	require.NoError(t, Compare(second, "$peci4lPASS#all"))
}

func TestCompareMismatch(t *testing.T) {
	hash, err := Hash("correct-password")
	require.NoError(t, err)

	require.Error(t, Compare(hash, "wrong-password"))
	require.Error(t, Compare(hash, ""))
	require.Error(t, Compare("not-a-hash", "correct-password"))
}
