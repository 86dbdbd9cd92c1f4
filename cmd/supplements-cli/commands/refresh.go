package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Scrapes the current price of every store listing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := service(cmd).RefreshAllPrices(cmd.Context())
		if err != nil && !report.Cancelled {
			return err
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Store ID", "Result", "Price"})
		for _, u := range report.Updated {
			price := u.Price
			t.AppendRow(table.Row{u.StoreInfoID, "updated", formatPrice(&price)})
		}
		for _, f := range report.Failures {
			t.AppendRow(table.Row{f.StoreInfoID, "failed", f.Message})
		}
		t.Render()

		fmt.Fprintf(
			cmd.OutOrStdout(), "%d updated, %d failed, %d skipped.\n",
			len(report.Updated), len(report.Failures), report.Skipped,
		)
		return err
	},
}
