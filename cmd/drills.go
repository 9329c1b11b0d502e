package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/drills"
)

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "List the example programs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTOPIC\tDAY\tDESCRIPTION")
		for _, drill := range drills.All() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", drill.Name, drill.Topic, drill.Day, drill.Short)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(drillsCmd)
}
