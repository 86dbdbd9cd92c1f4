package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"supplements-backend/internal/components/telemetry"
	configsqlite "supplements-backend/lib/configutil/sqlite"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dbpath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", dbpath}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, dbpath string, args ...string) string {
	t.Helper()
	out, err := run(t, dbpath, args...)
	require.NoError(t, err, out)
	return out
}

// inspect opens its own connection to the database the commands write to.
func inspect(t *testing.T, dbpath string) supplements.Service {
	t.Helper()
	database, err := configsqlite.Struct{File: dbpath}.OpenDB(db.Schema)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return supplements.NewService(
		database,
		prices.NewClient(prices.ClientOptions{}, &telemetry.Recorder{}),
		supplements.WithCustomTelemetryAPI(&telemetry.Recorder{}),
	)
}

func findSupplement(t *testing.T, svc supplements.Service, name string) supplements.Supplement {
	t.Helper()
	list, err := svc.ListSupplements(context.Background())
	require.NoError(t, err)
	for _, s := range list {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("supplement %q not found", name)
	return supplements.Supplement{}
}

func TestCatalogCommands(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "cli.db")

	require.Contains(t, mustRun(t, dbpath, "seed"), "Seeded 4 supplements.")
	require.Contains(t, mustRun(t, dbpath, "seed"), "nothing was seeded")
	require.Contains(t, mustRun(t, dbpath, "catalog", "list"), "Vitamin D")

	out := mustRun(t, dbpath,
		"catalog", "add",
		"--name", "Magnesium Glycinate",
		"--price", "14.5",
		"--category", "Minerals",
		"--category", "Sleep",
	)
	require.Contains(t, out, "Created supplement")
	require.Contains(t, mustRun(t, dbpath, "catalog", "search", "magnesium"), "Magnesium Glycinate")
	require.Contains(t, mustRun(t, dbpath, "catalog", "categories"), "Sleep")

	svc := inspect(t, dbpath)
	magnesium := findSupplement(t, svc, "Magnesium Glycinate")
	require.Empty(t, magnesium.StoreInfos)

	out = mustRun(t, dbpath,
		"store", "add", magnesium.ID,
		"--name", "Amazon",
		"--url", "https://www.amazon.com/dp/magnesium",
		"--price", "15.25",
	)
	require.Contains(t, out, "Created store listing")

	magnesium = findSupplement(t, svc, "Magnesium Glycinate")
	require.Len(t, magnesium.StoreInfos, 1)
	require.Equal(t, 15.25, *magnesium.StoreInfos[0].Price)
	require.Contains(t, mustRun(t, dbpath, "catalog", "show", magnesium.ID), "https://www.amazon.com/dp/magnesium")

	mustRun(t, dbpath, "store", "delete", magnesium.StoreInfos[0].ID)
	mustRun(t, dbpath, "catalog", "delete", magnesium.ID)

	_, err := run(t, dbpath, "catalog", "show", magnesium.ID)
	require.ErrorIs(t, err, supplements.ErrNotFound)
}

func TestCartAndOrderCommands(t *testing.T) {
	dir := t.TempDir()
	dbpath := filepath.Join(dir, "cli.db")
	mustRun(t, dbpath, "seed")

	svc := inspect(t, dbpath)
	vitaminD := findSupplement(t, svc, "Vitamin D")
	store := vitaminD.StoreInfos[0]

	require.Contains(t, mustRun(t, dbpath, "cart", "add", vitaminD.ID, store.ID, "2"), "quantity of 2")
	require.Contains(t, mustRun(t, dbpath, "cart", "add", vitaminD.ID, store.ID), "quantity of 3")

	_, err := run(t, dbpath, "cart", "add", vitaminD.ID, store.ID, "many")
	require.Error(t, err)

	cart, err := svc.ListCart(context.Background())
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, 3, cart[0].Quantity)

	mustRun(t, dbpath, "cart", "set", cart[0].ID, "1")
	require.Contains(t, mustRun(t, dbpath, "cart", "list"), "Vitamin D")

	out := mustRun(t, dbpath, "checkout")
	require.Contains(t, out, "with 1 items")

	_, err = run(t, dbpath, "checkout")
	require.ErrorIs(t, err, supplements.ErrEmptyCart)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Contains(t, mustRun(t, dbpath, "orders", "list"), orders[0].ID)
	require.Contains(t, mustRun(t, dbpath, "orders", "show", orders[0].ID), store.Name)

	_, err = run(t, dbpath, "orders", "email", orders[0].ID, "--to", "someone@example.com")
	require.ErrorContains(t, err, "smtp is not configured")

	snapshotPath := filepath.Join(dir, "snapshot.json")
	require.Contains(t, mustRun(t, dbpath, "export", "--out", snapshotPath), snapshotPath)

	mustRun(t, dbpath, "orders", "delete", orders[0].ID)
	orders, err = svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Empty(t, orders)

	out = mustRun(t, dbpath, "import", snapshotPath)
	require.Contains(t, out, "Imported 4 supplements, 0 cart items and 1 orders.")

	orders, err = svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, 1, orders[0].Items[0].Quantity)
}

func TestLookupCommands(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "cli.db")

	require.Contains(t, mustRun(t, dbpath, "lookup", "list", "supplement-type"), "No supplement_type options.")
	require.Contains(t, mustRun(t, dbpath, "lookup", "add", "supplement-type", "Capsule"), `Added supplement_type option "Capsule".`)
	mustRun(t, dbpath, "lookup", "add", "supplement_type", "Softgel")
	mustRun(t, dbpath, "lookup", "add", "category", "Sleep")

	out := mustRun(t, dbpath, "lookup", "list", "supplement_type")
	require.Equal(t, "Capsule\nSoftgel\n", out)

	require.Contains(t, mustRun(t, dbpath, "lookup", "delete", "supplement_type", "Capsule"), "Deleted")
	_, err := run(t, dbpath, "lookup", "delete", "supplement_type", "Capsule")
	require.ErrorIs(t, err, supplements.ErrNotFound)
	_, err = run(t, dbpath, "lookup", "list", "brand")
	require.ErrorIs(t, err, supplements.ErrValidationFailed)

	options, err := inspect(t, dbpath).ListLookupOptions(context.Background(), supplements.LookupCategory)
	require.NoError(t, err)
	require.Equal(t, []string{"Sleep"}, options)
}
