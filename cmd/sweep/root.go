package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sweep"
	"github.com/gogpu/sweep/metrics"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	verbose     bool
	metricsPath string

	registry *prometheus.Registry
	printer  *message.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{printer: message.NewPrinter(language.English)}

	root := &cobra.Command{
		Use:   "sweep",
		Short: "Build swept envelopes of boundary-represented solids",
		Long: `sweep extrudes solids along polyline paths and sweeps animated
mechanisms through time, writing the resulting solids as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log extrusion details at debug level")
	root.PersistentFlags().StringVar(&a.metricsPath, "metrics", "", `write Prometheus metrics to this file after the run ("-" for stdout)`)

	root.AddCommand(
		newRobotsCmd(a),
		newPathCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	sweep.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if a.metricsPath != "" {
		a.registry = prometheus.NewRegistry()
		sweep.SetMetrics(metrics.New(a.registry))
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	defer sweep.SetLogger(nil)
	if a.registry == nil {
		return nil
	}
	defer sweep.SetMetrics(nil)

	if a.metricsPath == "-" {
		return writeMetrics(cmd.OutOrStdout(), a.registry)
	}
	f, err := os.Create(a.metricsPath)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := writeMetrics(f, a.registry); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeMetrics dumps the registry in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
