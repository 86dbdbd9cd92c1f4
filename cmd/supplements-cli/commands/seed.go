package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fills an empty catalog with the default supplements.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := service(cmd).SeedCatalog(cmd.Context())
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The catalog is not empty, nothing was seeded.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d supplements.\n", count)
		return nil
	},
}
