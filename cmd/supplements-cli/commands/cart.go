package commands

import (
	"fmt"
	"strconv"
	"supplements-backend/services/supplements"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manages the shopping cart.",
}

func renderItems(cmd *cobra.Command, items []supplements.CartItem, total float64) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Supplement", "Store", "Price", "Qty", "Subtotal"})
	for _, item := range items {
		subtotal := item.Subtotal()
		t.AppendRow(table.Row{
			item.ID, item.SupplementName, item.StoreName,
			formatPrice(item.Price), item.Quantity, formatPrice(&subtotal),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", formatPrice(&total)})
	t.Render()
}

func parseQuantity(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", arg, err)
	}
	return qty, nil
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the items in the cart.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service(cmd)
		items, err := svc.ListCart(cmd.Context())
		if err != nil {
			return err
		}
		total, err := svc.TotalPrice(cmd.Context())
		if err != nil {
			return err
		}
		renderItems(cmd, items, total)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <supplement-id> <store-id> [quantity]",
	Short: "Adds a supplement bought at the given store to the cart.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty := 1
		if len(args) == 3 {
			var err error
			qty, err = parseQuantity(args[2])
			if err != nil {
				return err
			}
		}
		item, err := service(cmd).AddToCart(cmd.Context(), args[0], args[1], qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cart item %s now has a quantity of %d.\n", item.ID, item.Quantity)
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <item-id> <quantity>",
	Short: "Sets the quantity of a cart item, 0 removes it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		return service(cmd).SetQuantity(cmd.Context(), args[0], qty)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Removes an item from the cart.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service(cmd).RemoveFromCart(cmd.Context(), args[0])
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes every item from the cart.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service(cmd).ClearCart(cmd.Context())
	},
}
