package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"botCommands/pkg/command"
	"botCommands/pkg/storage"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Prints the registered commands per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := BuildRegistry(storage.NewMemoryClient())
		if err != nil {
			return err
		}

		return writeCommands(cmd.OutOrStdout(), registry)
	},
}

func initCommandsCmd() {
	rootCmd.AddCommand(commandsCmd)
}

func writeCommands(out io.Writer, r *command.Registry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "CATEGORY\tCOMMAND\tARGS\tDESCRIPTION")
	for _, category := range r.Categories() {
		for _, e := range r.Entries(category) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", category, e.Name, e.Arity(), e.Description)
		}
	}

	return errors.Wrap(w.Flush(), "failed to print commands")
}
