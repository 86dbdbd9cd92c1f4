package supplements

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	seeded, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, len(DefaultCatalog), seeded)

	seeded, err = svc.SeedCatalog(ctx)
	require.NoError(t, err)
	require.Zero(t, seeded)

	catalog, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	names := make([]string, len(catalog))
	for i, supplement := range catalog {
		names[i] = supplement.Name
		require.Len(t, supplement.StoreInfos, 2)
	}
	require.Equal(t, []string{"Protein Powder", "Vitamin D", "Omega-3 Fish Oil", "Multivitamin"}, names)

	walmart := catalog[0].StoreInfos[1]
	require.Equal(t, "Walmart", walmart.Name)
	require.Equal(t, 80.0, *walmart.Price)
	require.Nil(t, catalog[0].StoreInfos[0].Price)
}

func TestSearchSupplements(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	_, err = svc.CreateSupplement(ctx, CreateSupplementRequest{
		Name:       "Ashwagandha",
		Categories: []string{"Adaptogens", "Sleep"},
	})
	require.NoError(t, err)

	type testCase struct {
		query    string
		limit    int
		expected []string
	}
	cases := []testCase{
		{query: "vitamin", expected: []string{"Vitamin D", "Multivitamin"}},
		{query: "  FISH ", expected: []string{"Omega-3 Fish Oil"}},
		{query: "protien", expected: []string{"Protein Powder"}},
		{query: "sleep", expected: []string{"Ashwagandha"}},
		{query: "vitamin", limit: 1, expected: []string{"Vitamin D"}},
		{query: "xyzzy", expected: []string{}},
		{query: "   ", expected: []string{}},
	}
	for _, test := range cases {
		results, err := svc.SearchSupplements(ctx, test.query, test.limit)
		require.NoError(t, err, test.query)

		names := []string{}
		for _, result := range results {
			names = append(names, result.Supplement.Name)
			require.GreaterOrEqual(t, result.Score, searchThreshold)
		}
		require.Equal(t, test.expected, names, test.query)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateSupplement(ctx, mustList(t, svc)[0].ID, SupplementPatch{
		Categories: &[]string{"Protein"},
	})
	require.NoError(t, err)

	catalog := mustList(t, svc)
	_, err = svc.AddToCart(ctx, catalog[0].ID, catalog[0].StoreInfos[1].ID, 2)
	require.NoError(t, err)
	_, err = svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, catalog[1].ID, catalog[1].StoreInfos[0].ID, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, catalog[2].ID, catalog[2].StoreInfos[1].ID, 3)
	require.NoError(t, err)
	_, err = svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, catalog[3].ID, catalog[3].StoreInfos[0].ID, 4)
	require.NoError(t, err)

	exported, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Supplements, 4)
	require.Len(t, exported.Cart, 1)
	require.Len(t, exported.OrderList, 2)

	encoded, err := json.Marshal(exported)
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &keys))
	require.Contains(t, keys, "supplements")
	require.Contains(t, keys, "cart")
	require.Contains(t, keys, "orderList")

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	restored, _ := setupService(t, &fakeFetcher{})
	err = restored.ImportSnapshot(ctx, decoded)
	require.NoError(t, err)

	reexported, err := restored.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(exported, reexported))

	total, err := restored.TotalPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
}

func TestImportSnapshotRejectsBrokenReferences(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	before, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)

	other := before.Supplements[1].StoreInfos[0].ID
	cases := map[string]Snapshot{
		"foreign store": {
			Supplements: before.Supplements,
			Cart: []SnapshotItem{{
				SupplementID: before.Supplements[0].ID,
				StoreInfoID:  other,
				Quantity:     1,
			}},
		},
		"unknown supplement": {
			Supplements: before.Supplements,
			Cart:        []SnapshotItem{{SupplementID: "missing", StoreInfoID: other, Quantity: 1}},
		},
		"zero quantity": {
			Supplements: before.Supplements,
			OrderList: []SnapshotOrder{{Items: []SnapshotItem{{
				SupplementID: before.Supplements[1].ID,
				StoreInfoID:  other,
			}}}},
		},
		"duplicate supplement": {
			Supplements: []Supplement{before.Supplements[0], before.Supplements[0]},
		},
		"nameless supplement": {
			Supplements: []Supplement{{ID: "x"}},
		},
	}
	for name, snapshot := range cases {
		err := svc.ImportSnapshot(ctx, snapshot)
		require.ErrorIs(t, err, ErrValidationFailed, name)
	}

	after, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(before, after))
}

func TestImportSnapshotTrimsFields(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	err := svc.ImportSnapshot(ctx, Snapshot{
		Supplements: []Supplement{{
			ID:         "s1",
			Name:       "  Zinc ",
			Dosage:     " 25 mg daily\t",
			Type:       "\n Tablet  ",
			Categories: []string{" Minerals "},
		}},
	})
	require.NoError(t, err)

	imported, err := svc.GetSupplement(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "Zinc", imported.Name)
	require.Equal(t, "25 mg daily", imported.Dosage)
	require.Equal(t, "Tablet", imported.Type)
	require.Equal(t, []string{"Minerals"}, imported.Categories)

	created, err := svc.CreateSupplement(ctx, CreateSupplementRequest{
		Name:   "Zinc copy",
		Dosage: " 25 mg daily\t",
		Type:   "\n Tablet  ",
	})
	require.NoError(t, err)
	require.Equal(t, created.Dosage, imported.Dosage)
	require.Equal(t, created.Type, imported.Type)
}

func mustList(t *testing.T, svc Service) []Supplement {
	t.Helper()
	catalog, err := svc.ListSupplements(testContext(t))
	require.NoError(t, err)
	return catalog
}
