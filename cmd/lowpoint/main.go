// Command lowpoint prints the lowest point reachable by walking downhill
// from a start cell of a height map.
//
//	lowpoint [row col]          generate a 10×10 map (seed 0) and query it
//	lowpoint find 3 2 --grid m.yaml
//	lowpoint show --rows 20 --cols 20 --seed 7 --save m.yaml
//	lowpoint batch --grid m.yaml --workers 8 --metrics_file lowpoint.prom
package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

func main() {
	// glog refuses to be configured before its flag set is parsed; cobra
	// parses the real values through the merged pflag set.
	_ = goflag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Flush()
		os.Exit(1)
	}
}

// run builds the command tree and executes it against args.
func run(out io.Writer, args []string) error {
	root := newRootCmd(out)
	root.SetArgs(args)
	return root.Execute()
}
