package drills

import (
	"fmt"
	"text/tabwriter"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// List prints the drill catalog. It is itself a drill so students can
// discover the others from inside the practice shell.
func List(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "drills [--topic TOPIC]",
		Short: "List the course's example programs.",
	}

	topic := cmd.Flags().StringLong("topic", 't', "", "only list drills for this topic")

	return cmd.Run(p, func() int {
		tw := tabwriter.NewWriter(p.Stdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTOPIC\tDAY\tDESCRIPTION")
		for _, d := range All() {
			if *topic != "" && d.Topic != *topic {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.Name, d.Topic, d.Day, d.Short)
		}
		tw.Flush()
		return 0
	})
}

var _ sandbox.ProcessFunc = List

func init() {
	mustRegister(Drill{
		Name:  "drills",
		Topic: "meta",
		Short: "List the available drills.",
		Day:   1,
		Proc:  List,
	})
}
