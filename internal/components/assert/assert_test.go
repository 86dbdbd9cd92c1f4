package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	value := 3

	require.Panics(t, func() { NotNil(nil, "value") })
	require.Panics(t, func() { NotNil(nilPtr, "pointer") })
	require.Panics(t, func() { NotNil(nilMap, "map") })
	require.NotPanics(t, func() { NotNil(&value, "pointer") })
	require.NotPanics(t, func() { NotNil(value, "int") })
}

func TestNotEmptyStr(t *testing.T) {
	require.Panics(t, func() { NotEmptyStr("", "name") })
	require.NotPanics(t, func() { NotEmptyStr("vitamin d", "name") })
}
