package commands

import (
	"fmt"
	"strings"
	"supplements-backend/services/supplements"

	"github.com/spf13/cobra"
)

func init() {
	lookupCmd.AddCommand(lookupListCmd)
	lookupCmd.AddCommand(lookupAddCmd)
	lookupCmd.AddCommand(lookupDeleteCmd)
	rootCmd.AddCommand(lookupCmd)
}

func lookupKinds() string {
	names := make([]string, len(supplements.LookupKinds))
	for i, kind := range supplements.LookupKinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Manages the option lists offered for dosages, types and categories.",
	Long:  "Manages the option lists offered for dosages, types and categories.\n\nKinds: " + lookupKinds(),
}

var lookupListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "Lists the options of a kind.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := supplements.ParseLookupKind(args[0])
		if err != nil {
			return err
		}
		options, err := service(cmd).ListLookupOptions(cmd.Context(), kind)
		if err != nil {
			return err
		}
		if len(options) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No %s options.\n", kind)
			return nil
		}
		for _, option := range options {
			fmt.Fprintln(cmd.OutOrStdout(), option)
		}
		return nil
	},
}

var lookupAddCmd = &cobra.Command{
	Use:   "add <kind> <name>",
	Short: "Adds an option to a kind.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := supplements.ParseLookupKind(args[0])
		if err != nil {
			return err
		}
		err = service(cmd).AddLookupOption(cmd.Context(), kind, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s option %q.\n", kind, strings.TrimSpace(args[1]))
		return nil
	},
}

var lookupDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <name>",
	Short: "Deletes an option from a kind.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := supplements.ParseLookupKind(args[0])
		if err != nil {
			return err
		}
		err = service(cmd).DeleteLookupOption(cmd.Context(), kind, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s option %q.\n", kind, strings.TrimSpace(args[1]))
		return nil
	},
}
