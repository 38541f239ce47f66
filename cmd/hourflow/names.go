package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/hourflow-go/pkg/hourflow"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/output"
)

func newNamesCommand(g *globalFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "names [input.xlsx]",
		Short: "List the individuals that can be selected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			table, err := hourflow.ReadTable(args[0], opts)
			if err != nil {
				return err
			}
			names, err := hourflow.Names(table, opts)
			if err != nil {
				return err
			}

			data, err := output.NamesToJSON(names, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, "", append(data, '\n'))
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
