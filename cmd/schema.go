package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/inline"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:       "schema [kind]",
	Short:     "Print the JSON schema of the machine-readable output",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: inline.SchemaKinds(),
	Run: func(cmd *cobra.Command, args []string) {
		kind := "listing"
		if len(args) == 1 {
			kind = args[0]
		}

		schema, err := inline.Schema(kind)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(schema))
	},
}
