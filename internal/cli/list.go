package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/ropkit/pkg/plist"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [VALUE...]",
		Short: "Prepend each value in turn to a persistent list and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := plist.Empty[string]()
			for _, a := range args {
				l = l.Prepend(a)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "list: %s (len %d)\n", l, l.Len())
			for v := range l.All() {
				fmt.Fprintf(out, "- %s\n", v)
			}
			if head, ok := l.Head(); ok {
				fmt.Fprintf(out, "head: %s\n", head)
			}
			if tail, ok := l.Tail(); ok {
				fmt.Fprintf(out, "tail: %s\n", tail)
			}
			return nil
		},
	}
}
