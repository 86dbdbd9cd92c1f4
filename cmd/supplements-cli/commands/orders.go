package commands

import (
	"errors"
	"fmt"
	"supplements-backend/lib/orderemail"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var emailTo *[]string

func init() {
	emailTo = ordersEmailCmd.Flags().StringSlice("to", nil, "A recipient, may be repeated.")
	ordersEmailCmd.MarkFlagRequired("to")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)
	ordersCmd.AddCommand(ordersEmailCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(checkoutCmd)
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout [item-id...]",
	Short: "Orders the given cart items, or the whole cart when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := service(cmd).Checkout(cmd.Context(), args...)
		if err != nil {
			return err
		}
		fmt.Fprintf(
			cmd.OutOrStdout(), "Created order %s with %d items, total $%.2f.\n",
			order.ID, len(order.Items), order.Total(),
		)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manages past orders.",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists past orders, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := service(cmd).ListOrders(cmd.Context())
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"ID", "Ordered", "Items", "Total"})
		for _, o := range orders {
			total := o.Total()
			t.AppendRow(table.Row{o.ID, o.OrderedAt.Format("2006-01-02 15:04"), len(o.Items), formatPrice(&total)})
		}
		t.Render()
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Shows an order as a shopping list grouped by store.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := service(cmd).GetOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), orderemail.Render(order))
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Deletes an order and its items.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := service(cmd).DeleteOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted order %s.\n", args[0])
		return nil
	},
}

var ordersEmailCmd = &cobra.Command{
	Use:   "email <order-id> --to <address>",
	Short: "Emails the shopping list of an order using the smtp settings of the configuration file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		smtp := config(cmd).Smtp
		if smtp.Server == "" {
			return errors.New("smtp is not configured, set \"smtp\" in the configuration file")
		}
		order, err := service(cmd).GetOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		err = orderemail.Send(cmd.Context(), smtp, *emailTo, order)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent order %s to %s.\n", order.ID, formatList(*emailTo))
		return nil
	},
}
