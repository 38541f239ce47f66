package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/hourflow-go/pkg/hourflow"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath   string
	sheet        string
	usePrintArea bool
	password     string
	logLevel     string
	logFormat    string
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "hourflow",
		Short: "Turn working-hour sheets into Sankey flow data",
		Long: `hourflow reads a personnel working-hour workbook (.xlsx) and emits the
node/link dataset of a Sankey diagram: top category -> group -> sub-category -> individual.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML file with column names and labels")
	pf.StringVar(&g.sheet, "sheet", "", "Sheet to read (default: first sheet)")
	pf.BoolVar(&g.usePrintArea, "print-area", false, "Restrict the table to the sheet's print area")
	pf.StringVar(&g.password, "password", "", "Password of an encrypted workbook")
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newBuildCommand(g))
	rootCmd.AddCommand(newNamesCommand(g))

	return rootCmd
}

// options assembles pipeline options from the config file and flags.
func (g *globalFlags) options(stderr io.Writer) (hourflow.Options, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return hourflow.Options{}, err
		}
		cfg = loaded
	}

	logger, err := newLogger(stderr, g.logLevel, g.logFormat)
	if err != nil {
		return hourflow.Options{}, err
	}

	opts := hourflow.DefaultOptions()
	cfg.Apply(&opts)
	opts.Sheet = g.sheet
	opts.UsePrintArea = g.usePrintArea
	opts.Password = g.password
	opts.Logger = logger
	return opts, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level: %s (must be debug, info, warn, or error)", level)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format: %s (must be text or json)", format)
	}
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
