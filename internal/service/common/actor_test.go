package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDetectActor verifies host and user detection succeeds on the test machine.
func TestDetectActor(t *testing.T) {
	t.Parallel()

	actor, err := DetectActor()
	require.NoError(t, err)
	require.NotEmpty(t, actor.Hostname)
	require.NotEmpty(t, actor.Username)
}
