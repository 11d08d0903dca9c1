package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"rtn/internal/inspect/metrics"
	"rtn/internal/inspect/service"
	"rtn/internal/platform/config"
	"rtn/internal/platform/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand shares. It is filled in by the root
// command's PersistentPreRunE once flags are parsed.
type app struct {
	cfg      config.CLI
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	registry *prometheus.Registry
	inspect  *service.Service
}

// run executes the CLI and writes the metrics textfile even when the
// command itself failed, so rejected runs are still counted.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{cfg: config.FromEnv(), stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if ferr := a.flushMetrics(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtn",
		Short: "Parse, validate and convert U.S. bank routing transit numbers",
		Long: `rtn validates ABA routing transit numbers in MICR form (111000025)
or fraction form (66-2/1110), converts between the two forms, and reports
the Federal Reserve range each routing symbol belongs to.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "Log format: text or json")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format: text or json")
	flags.StringVar(&a.cfg.MetricsFile, "metrics-file", a.cfg.MetricsFile, "Write Prometheus counters to this textfile after the run")

	rootCmd.AddCommand(a.newParseCommand())
	rootCmd.AddCommand(a.newConvertCommand())
	rootCmd.AddCommand(a.newCheckDigitCommand())
	rootCmd.AddCommand(a.newRangesCommand())

	return rootCmd
}

func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(a.stderr, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = log
	a.registry = prometheus.NewRegistry()
	a.inspect = service.New(
		service.WithLogger(log),
		service.WithMetrics(metrics.New(a.registry)),
	)
	a.logger.Debug("rtn starting", "command", cmd.Name(), "output", a.cfg.Output)
	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" || a.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
