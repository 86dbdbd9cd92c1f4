package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "Vitamin D", expected: "vitamin d"},
		{in: "  Omega-3   Fish\tOil \n", expected: "omega-3 fish oil"},
		{in: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeName(test.in))
	}
}

func TestNormalizeSet(t *testing.T) {
	require.Equal(
		t,
		[]string{"Protein", "Daily Vitamins"},
		NormalizeSet([]string{"Protein", " protein ", "", "  ", "Daily   Vitamins", "daily vitamins"}),
	)
	require.Nil(t, NormalizeSet(nil))
}
