package commands

import (
	"fmt"
	"strings"
	"supplements-backend/services/supplements"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	addName       *string
	addPrice      *float64
	addDosage     *string
	addQuantity   *int
	addType       *string
	addCategories *[]string
	searchLimit   *int
)

func init() {
	addName = catalogAddCmd.Flags().String("name", "", "The name of the supplement.")
	addPrice = catalogAddCmd.Flags().Float64("price", 0, "The reference price of the supplement.")
	addDosage = catalogAddCmd.Flags().String("dosage", "", "The dosage, ex. \"1000 IU\".")
	addQuantity = catalogAddCmd.Flags().Int("quantity", 1, "The number of units in a container.")
	addType = catalogAddCmd.Flags().String("type", "", "The form of the supplement, ex. \"Softgel\".")
	addCategories = catalogAddCmd.Flags().StringSlice("category", nil, "A category, may be repeated.")
	catalogAddCmd.MarkFlagRequired("name")

	searchLimit = catalogSearchCmd.Flags().Int("limit", supplements.DefaultSearchLimit, "The maximum number of results.")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogCategoriesCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manages the supplements in the catalog.",
}

func renderSupplements(cmd *cobra.Command, list []supplements.Supplement) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Name", "Price", "Dosage", "Qty", "Type", "Categories", "Stores", "Cheapest"})
	for _, s := range list {
		cheapest := "-"
		if info, ok := s.CheapestStoreInfo(); ok {
			cheapest = fmt.Sprintf("%s (%s)", formatPrice(info.Price), info.Name)
		}
		t.AppendRow(table.Row{
			s.ID, s.Name, formatPrice(&s.Price), s.Dosage, s.Quantity, s.Type,
			formatList(s.Categories), len(s.StoreInfos), cheapest,
		})
	}
	t.Render()
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every supplement, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := service(cmd).ListSupplements(cmd.Context())
		if err != nil {
			return err
		}
		renderSupplements(cmd, list)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <supplement-id>",
	Short: "Shows a supplement and its store listings.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := service(cmd).GetSupplement(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		renderSupplements(cmd, []supplements.Supplement{s})

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Store ID", "Store", "Price", "URL"})
		for _, info := range s.StoreInfos {
			t.AppendRow(table.Row{info.ID, info.Name, formatPrice(info.Price), info.StoreURL})
		}
		t.Render()
		return nil
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add --name <name> [--price <price>] [--category <category>...]",
	Short: "Adds a supplement to the catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := service(cmd).CreateSupplement(cmd.Context(), supplements.CreateSupplementRequest{
			Name:       *addName,
			Price:      *addPrice,
			Dosage:     *addDosage,
			Quantity:   *addQuantity,
			Type:       *addType,
			Categories: *addCategories,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created supplement %s.\n", s.ID)
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <supplement-id>",
	Short: "Deletes a supplement, its store listings and every cart item or ordered item referencing it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := service(cmd).DeleteSupplement(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted supplement %s.\n", args[0])
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Fuzzy searches supplements by name and category.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := service(cmd).SearchSupplements(cmd.Context(), strings.Join(args, " "), *searchLimit)
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"ID", "Name", "Matched On", "Score"})
		for _, r := range results {
			t.AppendRow(table.Row{r.Supplement.ID, r.Supplement.Name, r.MatchedOn, fmt.Sprintf("%.2f", r.Score)})
		}
		t.Render()
		return nil
	},
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lists every category in use.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := service(cmd).ListCategories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}
