package main

import (
	goflag "flag"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lowpoint/config"
	"github.com/katalvlaran/lowpoint/grid"
	"github.com/katalvlaran/lowpoint/gridio"
	"github.com/katalvlaran/lowpoint/lowpoint"
	"github.com/katalvlaran/lowpoint/terrain"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	out  io.Writer
	conf *viper.Viper
	cfg  config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, conf: viper.New()}
	config.SetDefaults(a.conf)

	root := &cobra.Command{
		Use:   "lowpoint [row col]",
		Short: "Find the lowest point reachable by walking downhill",
		Long: `
lowpoint walks a height map from a start cell, stepping only to orthogonal
neighbours of equal or lower altitude, and reports the lowest cell it can
reach. Ties go to the route with the steepest drop where routes diverge, then
to the cell closest to the start.

Without a subcommand it behaves like "find".`,
		Args:          startArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Prepare(a.conf); err != nil {
				return err
			}
			cfg, err := config.Load(a.conf)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: a.runFind,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	addConfigFlags(flags)
	if err := a.conf.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(a.findCmd(), a.showCmd(), a.batchCmd(), versionCmd(out))
	return root
}

// addConfigFlags registers one flag per config key plus glog's flags.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String(config.KeyConfig, "",
		"Configuration file. Overridden by environment variables and flags.")
	flags.Int(config.KeyRows, config.DefaultRows, "Rows of the generated map.")
	flags.Int(config.KeyCols, config.DefaultCols, "Columns of the generated map.")
	flags.Int64(config.KeySeed, config.DefaultSeed, "Seed of the generated map.")
	flags.String(config.KeyGrid, "", "YAML or JSON grid document to load instead of generating a map.")
	flags.String(config.KeyTieBreak, lowpoint.Manhattan.String(),
		"Distance rule for otherwise tied candidates: manhattan or row-then-column.")
	flags.Bool(config.KeyColor, false, "Highlight the start, path and result on the map.")
	flags.Int(config.KeyWorkers, config.DefaultWorkers, "Concurrent searches in batch mode (0 = unbounded).")
	flags.Int64(config.KeyCacheSize, config.DefaultCacheSize, "Result cache entries (0 disables caching).")
	flags.String(config.KeyMetricsFile, "", "Write prometheus metrics to this file after a batch.")
	flags.AddGoFlagSet(goflag.CommandLine)
}

// startArgs accepts either no positional arguments or a row and a column.
func startArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errors.Errorf("expected [row col], got %d argument(s)", len(args))
	}
	_, _, err := parseStart(args)
	return err
}

// parseStart returns (0, 0) when args is empty.
func parseStart(args []string) (row, col int, err error) {
	if len(args) == 0 {
		return 0, 0, nil
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "row %q", args[0])
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "column %q", args[1])
	}
	return row, col, nil
}

// loadGrid reads the configured grid file or generates a map.
func (a *app) loadGrid() (*grid.Grid, error) {
	if a.cfg.GridFile != "" {
		return gridio.Load(a.cfg.GridFile)
	}
	return terrain.Generate(a.cfg.Rows, a.cfg.Cols, terrain.WithSeed(a.cfg.Seed))
}
