package main

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lowpoint/lowpoint"
	"github.com/katalvlaran/lowpoint/render"
)

func (a *app) findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [row col]",
		Short: "Print the map and the lowest point reachable from row, col (default 0 0)",
		Args:  startArgs,
		RunE:  a.runFind,
	}
	cmd.Flags().Bool("no_map", false, "Print only the result line.")
	return cmd
}

func (a *app) runFind(cmd *cobra.Command, args []string) error {
	row, col, err := parseStart(args)
	if err != nil {
		return err
	}
	g, err := a.loadGrid()
	if err != nil {
		return err
	}

	res, err := lowpoint.FindLowestPoint(g, row, col, lowpoint.WithTieBreak(a.cfg.TieBreak))
	if err != nil {
		return err
	}
	glog.V(1).Infof("Search from (%d,%d): %d terminals, %d steps", row, col, res.Terminals, res.Steps)

	noMap, _ := cmd.Flags().GetBool("no_map")
	switch {
	case noMap:
	case a.cfg.Color:
		err = render.Highlight(a.out, g, res)
	default:
		err = render.Map(a.out, g)
	}
	if err != nil {
		return err
	}
	return render.Result(a.out, res)
}
