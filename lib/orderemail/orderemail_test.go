package orderemail

import (
	"strings"
	"supplements-backend/services/supplements"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func price(p float64) *float64 {
	return &p
}

func TestRender(t *testing.T) {
	order := supplements.Order{
		ID:        "order-1",
		OrderedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		Items: []supplements.CartItem{
			{SupplementName: "Protein Powder", StoreName: "Walmart", Price: price(80), Quantity: 1},
			{SupplementName: "Vitamin D", StoreName: "Amazon", Quantity: 2},
			{SupplementName: "Multivitamin", StoreName: "Walmart", Price: price(12.5), Quantity: 2},
		},
	}

	rendered := Render(order)
	require.True(t, strings.HasPrefix(rendered, "Order order-1\nPlaced Fri, 01 Mar 2024 09:00:00 UTC\n"))
	require.True(t, strings.HasSuffix(rendered, "Total: $105.00\n"))

	walmart := strings.Index(rendered, "Walmart\n")
	amazon := strings.Index(rendered, "Amazon\n")
	require.Greater(t, walmart, 0)
	require.Greater(t, amazon, walmart)

	require.Contains(t, rendered, "Multivitamin")
	require.Contains(t, rendered, "$25.00")
	require.Contains(t, rendered, "unknown")
	require.Less(t, strings.Index(rendered, "Multivitamin"), amazon)

	empty := Render(supplements.Order{ID: "order-2"})
	require.Contains(t, empty, "(no items)")
	require.True(t, strings.HasSuffix(empty, "Total: $0.00\n"))
}
