package main

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lowpoint/gridio"
	"github.com/katalvlaran/lowpoint/render"
)

func (a *app) showCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the map without searching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			if save != "" {
				if err := gridio.Save(save, g); err != nil {
					return err
				}
				glog.Infof("Saved %dx%d grid to %s", g.Rows(), g.Columns(), save)
			}
			return render.Map(a.out, g)
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Also write the map as a YAML grid document.")
	return cmd
}
