package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/hourflow-go/pkg/hourflow"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/output"
)

func newBuildCommand(g *globalFlags) *cobra.Command {
	var (
		outputPath      string
		format          string
		pretty          bool
		selectNames     []string
		selectAll       bool
		none            bool
		aggregateLeaves bool
	)

	cmd := &cobra.Command{
		Use:   "build [input.xlsx]",
		Short: "Build the Sankey node/link dataset",
		Long: `Build reads the hour sheet, keeps the selected individuals and writes the
node/link graph as JSON (default) or as an xlsx workbook.

Without --select or --all the first individuals of the sheet are selected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.AggregateLeaves = opts.AggregateLeaves || aggregateLeaves

			switch {
			case selectAll:
				opts.Selection = []string{opts.SelectAllToken}
				if opts.SelectAllToken == "" {
					opts.Selection = []string{hourflow.SelectAll}
				}
			case none:
				opts.Selection = []string{}
			case len(selectNames) > 0:
				opts.Selection = selectNames
			}

			graph, err := hourflow.Generate(args[0], opts)
			if err != nil {
				var schemaErr *hourflow.SchemaError
				if errors.As(err, &schemaErr) {
					return fmt.Errorf("the workbook is missing required columns, check the column names: %w", err)
				}
				return fmt.Errorf("build failed: %w", err)
			}

			data, err := encode(graph, format, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, outputPath, data)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or xlsx")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringArrayVarP(&selectNames, "select", "s", nil, "Individual to include (repeatable; the select-all token selects everyone)")
	cmd.Flags().BoolVar(&selectAll, "all", false, "Include every individual")
	cmd.Flags().BoolVar(&none, "none", false, "Include nobody (emits an empty graph)")
	cmd.Flags().BoolVar(&aggregateLeaves, "aggregate-leaves", false, "Sum sub-category -> individual links per pair")
	cmd.MarkFlagsMutuallyExclusive("select", "all", "none")

	return cmd
}

func encode(graph *models.Graph, format string, pretty bool) ([]byte, error) {
	switch format {
	case "json":
		data, err := output.ToJSON(graph, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "xlsx":
		var buf bytes.Buffer
		if err := output.WriteXLSX(graph, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or xlsx)", format)
	}
}
