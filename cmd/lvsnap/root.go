package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsnap/snapshot"
	"github.com/katalvlaran/lvsnap/timeline"
)

// errNoNetwork is returned when --file is missing.
var errNoNetwork = errors.New("lvsnap: no network file (use --file)")

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	networkPath string
	attrName    string
	aggregate   string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "lvsnap",
	Short: "Inspect temporal graph snapshots",
	Long: `lvsnap loads a dynamic network (nodes, edges and edge attributes that
exist over time intervals) and shows the graph visible in a query window.

Examples:
  lvsnap snapshot -f network.yaml --start 6 --end 7
  lvsnap snapshot -f network.yaml --start 12 --end 13 --attr weight --json
  lvsnap replay -f network.yaml --from 0 --to 30 --step 5 --source a`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&networkPath, "file", "f", "", "Network YAML file")
	pf.StringVarP(&attrName, "attr", "a", "", "Edge attribute used for weights (empty disables)")
	pf.StringVar(&aggregate, "aggregate", "latest", "Weight aggregation: latest or mean")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
}

// parseAggregation maps a flag value to a snapshot.Aggregation.
func parseAggregation(s string) (snapshot.Aggregation, error) {
	switch strings.ToLower(s) {
	case "", "latest":
		return snapshot.AggregateLatest, nil
	case "mean":
		return snapshot.AggregateMean, nil
	default:
		return 0, fmt.Errorf("lvsnap: unknown aggregation %q (want latest or mean)", s)
	}
}

// newLogger builds a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("lvsnap: bad log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// openSnapshot loads the network named by --file and builds an engine
// configured from the global flags.
func openSnapshot(cmd *cobra.Command) (*timeline.Network, *snapshot.Snapshot, error) {
	if networkPath == "" {
		return nil, nil, errNoNetwork
	}
	agg, err := parseAggregation(aggregate)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return nil, nil, err
	}

	net, err := timeline.LoadFile(networkPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("network loaded",
		"file", networkPath,
		"nodes", net.Graph.VertexCount(),
		"edges", net.Graph.EdgeCount(),
		"intervals", net.Index.Len(),
	)

	opts := []snapshot.Option{snapshot.WithAggregation(agg), snapshot.WithLogger(logger)}
	if attrName != "" {
		opts = append(opts, snapshot.WithAttribute(attrName))
	}
	s, err := snapshot.New(net.Index, opts...)
	if err != nil {
		return nil, nil, err
	}

	return net, s, nil
}
