package supplements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupOptions(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	for _, kind := range LookupKinds {
		options, err := svc.ListLookupOptions(ctx, kind)
		require.NoError(t, err)
		require.Empty(t, options, kind)
	}

	for _, name := range []string{"mg", " IU ", "g", "mg"} {
		require.NoError(t, svc.AddLookupOption(ctx, LookupDosageUnit, name))
	}
	require.NoError(t, svc.AddLookupOption(ctx, LookupDosageFrequency, "Twice daily"))

	units, err := svc.ListLookupOptions(ctx, LookupDosageUnit)
	require.NoError(t, err)
	require.Equal(t, []string{"g", "IU", "mg"}, units)

	frequencies, err := svc.ListLookupOptions(ctx, LookupDosageFrequency)
	require.NoError(t, err)
	require.Equal(t, []string{"Twice daily"}, frequencies)

	require.NoError(t, svc.DeleteLookupOption(ctx, LookupDosageUnit, "IU"))
	err = svc.DeleteLookupOption(ctx, LookupDosageUnit, "IU")
	require.ErrorIs(t, err, ErrNotFound)
	// options of the same name under another kind are separate
	err = svc.DeleteLookupOption(ctx, LookupDosageFrequency, "mg")
	require.ErrorIs(t, err, ErrNotFound)

	units, err = svc.ListLookupOptions(ctx, LookupDosageUnit)
	require.NoError(t, err)
	require.Equal(t, []string{"g", "mg"}, units)
}

func TestLookupOptionValidation(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	err := svc.AddLookupOption(ctx, LookupCategory, "   ")
	require.ErrorIs(t, err, ErrValidationFailed)

	err = svc.AddLookupOption(ctx, LookupKind("brand"), "Acme")
	require.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.ListLookupOptions(ctx, LookupKind(""))
	require.ErrorIs(t, err, ErrValidationFailed)
	err = svc.DeleteLookupOption(ctx, LookupKind("brand"), "Acme")
	require.ErrorIs(t, err, ErrValidationFailed)

	type testCase struct {
		raw      string
		expected LookupKind
	}
	cases := []testCase{
		{raw: "dosage_unit", expected: LookupDosageUnit},
		{raw: "Dosage-Frequency", expected: LookupDosageFrequency},
		{raw: " SUPPLEMENT_TYPE ", expected: LookupSupplementType},
		{raw: "category", expected: LookupCategory},
	}
	for _, test := range cases {
		kind, err := ParseLookupKind(test.raw)
		require.NoError(t, err, test.raw)
		require.Equal(t, test.expected, kind)
	}
	_, err = ParseLookupKind("categories")
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestLookupOptionsSurviveSnapshotImport(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	require.NoError(t, svc.AddLookupOption(ctx, LookupSupplementType, "Softgel"))
	require.NoError(t, svc.ImportSnapshot(ctx, Snapshot{}))

	types, err := svc.ListLookupOptions(ctx, LookupSupplementType)
	require.NoError(t, err)
	require.Equal(t, []string{"Softgel"}, types)
}
