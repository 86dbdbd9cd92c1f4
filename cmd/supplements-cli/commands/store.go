package commands

import (
	"fmt"
	"supplements-backend/services/supplements"

	"github.com/spf13/cobra"
)

var (
	storeName    *string
	storeURL     *string
	storeInfoURL *string
	storePrice   *float64
)

func init() {
	storeName = storeAddCmd.Flags().String("name", "", "The name of the store, ex. \"Amazon\".")
	storeURL = storeAddCmd.Flags().String("url", "", "The product page the price is scraped from.")
	storeInfoURL = storeAddCmd.Flags().String("info-url", "", "A page with more information on the product.")
	storePrice = storeAddCmd.Flags().Float64("price", 0, "The known price, leave unset if unknown.")
	storeAddCmd.MarkFlagRequired("name")
	storeAddCmd.MarkFlagRequired("url")

	storeCmd.AddCommand(storeAddCmd)
	storeCmd.AddCommand(storeDeleteCmd)
	storeCmd.AddCommand(storeRefreshCmd)
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manages the store listings of supplements.",
}

var storeAddCmd = &cobra.Command{
	Use:   "add <supplement-id> --name <store> --url <product page>",
	Short: "Adds a store listing to a supplement.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := supplements.AddStoreInfoRequest{
			Name:     *storeName,
			StoreURL: *storeURL,
			InfoURL:  *storeInfoURL,
		}
		if cmd.Flags().Changed("price") {
			price := *storePrice
			req.Price = &price
		}
		info, err := service(cmd).AddStoreInfo(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created store listing %s.\n", info.ID)
		return nil
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <store-id>",
	Short: "Deletes a store listing, cart items using it move to another listing of the same supplement.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := service(cmd).DeleteStoreInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted store listing %s.\n", args[0])
		return nil
	},
}

var storeRefreshCmd = &cobra.Command{
	Use:   "refresh <store-id>",
	Short: "Scrapes the current price of a single store listing.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := service(cmd).RefreshPrice(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", args[0], formatPrice(&price))
		return nil
	},
}
