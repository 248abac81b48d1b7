package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lowpoint/finder"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Find the lowest reachable point from every cell of the map",
		Args:  cobra.NoArgs,
		RunE:  a.runBatch,
	}
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	f, err := finder.New(
		finder.WithWorkers(a.cfg.Workers),
		finder.WithCacheSize(a.cfg.CacheSize),
		finder.WithTieBreak(a.cfg.TieBreak),
		finder.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}
	defer f.Close()

	starts := finder.AllCells(g)
	results, err := f.FindAll(cmd.Context(), g, starts)
	if err != nil {
		return err
	}

	var terminals, steps int
	for _, res := range results {
		terminals += res.Terminals
		steps += res.Steps
		fmt.Fprintf(a.out, "%v -> %v altitude %d\n", res.Start, res.Cell, res.Altitude)
	}
	fmt.Fprintf(a.out, "Searched %s start cells: %s terminals evaluated, %s steps taken\n",
		humanize.Comma(int64(len(results))), humanize.Comma(int64(terminals)), humanize.Comma(int64(steps)))

	if a.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, reg); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", a.cfg.MetricsFile)
		}
		glog.Infof("Wrote metrics to %s", a.cfg.MetricsFile)
	}
	return nil
}
