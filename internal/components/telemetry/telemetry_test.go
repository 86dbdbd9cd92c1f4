package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	recorder := &Recorder{}
	scoped := NewScopedAPI("supplements", NewScopedAPI("catalog", recorder))

	scoped.ReportBroken("db.query", "boom")
	scoped.ReportWarning("prices.refresh-price", "id-1")
	scoped.ReportDebug("starting")
	scoped.ReportCount("prices.failures", 3)

	broken := recorder.Reports("broken")
	require.Len(t, broken, 1)
	require.Equal(t, "catalog: supplements: db.query", broken[0].ID)
	require.Equal(t, []any{"boom"}, broken[0].Params)

	counts := recorder.Reports("count")
	require.Len(t, counts, 1)
	require.Equal(t, []any{int64(3)}, counts[0].Params)

	require.Len(t, recorder.Reports(""), 4)
}
