package commands

import (
	"errors"
	"fmt"
	"supplements-backend/lib/backup"
	"supplements-backend/services/supplements"
	"time"

	"github.com/spf13/cobra"
)

var (
	exportOut *string
	exportS3  *bool
)

func init() {
	exportOut = exportCmd.Flags().String("out", "", "The file to write the snapshot to.")
	exportS3 = exportCmd.Flags().Bool("s3", false, "Upload the snapshot to the bucket of the configuration file.")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export (--out <file> | --s3)",
	Short: "Exports the catalog, the cart and past orders as json.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if *exportOut == "" && !*exportS3 {
			return errors.New("either --out or --s3 must be given")
		}

		snapshot, err := service(cmd).ExportSnapshot(cmd.Context())
		if err != nil {
			return err
		}

		if *exportOut != "" {
			err = backup.WriteFile(*exportOut, snapshot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote snapshot to %s.\n", *exportOut)
		}
		if *exportS3 {
			uploader, err := backup.NewUploader(cmd.Context(), config(cmd).S3)
			if err != nil {
				return err
			}
			key, err := uploader.Upload(cmd.Context(), snapshot, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded snapshot to %s.\n", key)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replaces all data with the contents of an exported snapshot.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var snapshot supplements.Snapshot
		err := backup.ReadFile(args[0], &snapshot)
		if err != nil {
			return err
		}
		err = service(cmd).ImportSnapshot(cmd.Context(), snapshot)
		if err != nil {
			return err
		}
		fmt.Fprintf(
			cmd.OutOrStdout(), "Imported %d supplements, %d cart items and %d orders.\n",
			len(snapshot.Supplements), len(snapshot.Cart), len(snapshot.OrderList),
		)
		return nil
	},
}
