package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStandardTime(t *testing.T) {
	utc := NewStandardTime(time.UTC)
	require.Equal(t, time.UTC, utc.Now().Location())

	local := NewStandardTime(nil)
	require.Equal(t, time.Local, local.Location())

	before := time.Now()
	now := utc.Now()
	require.False(t, now.Before(before.Add(-time.Second)))
}
