// Command compose-demo drives a compose engine against each bundled host.
//
// Usage:
//
//	compose-demo snapshot --out=<png>   Render one frame to a PNG file
//	compose-demo term                   Auto-scroll a feed in the terminal
//	compose-demo window                 Open a scrollable fyne window
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
)

const version = "0.1.0"

const usage = `compose-demo - render a sectioned feed through a compose engine

Usage:
  compose-demo snapshot --out=<png> [--items=<n>] [--offset=<y>] [--width=<w>] [--height=<h>] [--verbose]
  compose-demo term [--items=<n>] [--frames=<n>] [--width=<w>] [--height=<h>] [--verbose]
  compose-demo window [--items=<n>] [--width=<w>] [--height=<h>] [--verbose]
  compose-demo -h | --help
  compose-demo --version

Options:
  -h --help       Show this screen.
  --version       Show version.
  --out=<png>     Snapshot destination.
  --items=<n>     Number of feed items [default: 200].
  --offset=<y>    Vertical content offset of the snapshot [default: 0].
  --frames=<n>    Frames to scroll before exiting, 0 scrolls to the end [default: 0].
  --width=<w>     Viewport width; the terminal size wins for term [default: 480].
  --height=<h>    Viewport height [default: 640].
  --verbose       Trace engine passes to stderr.
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(opts)
	defer glog.Flush()

	if err := run(opts); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts docopt.Opts) error {
	if snapshot, _ := opts.Bool("snapshot"); snapshot {
		return runSnapshot(opts)
	} else if term, _ := opts.Bool("term"); term {
		return runTerm(opts)
	} else if window, _ := opts.Bool("window"); window {
		return runWindow(opts)
	}
	return nil
}

// setupLogging routes glog to stderr and raises verbosity for --verbose.
func setupLogging(opts docopt.Opts) {
	flag.CommandLine.Parse(nil)
	flag.Set("logtostderr", "true")
	if verbose, _ := opts.Bool("--verbose"); verbose {
		flag.Set("v", "2")
	}
}

func intOpt(opts docopt.Opts, key string) (int, error) {
	s, err := opts.String(key)
	if err != nil {
		return 0, fmt.Errorf("option %s: %w", key, err)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("option %s: %q is not a non-negative integer", key, s)
	}
	return n, nil
}

// dims reads the shared --items, --width and --height options.
func dims(opts docopt.Opts) (items, width, height int, err error) {
	if items, err = intOpt(opts, "--items"); err != nil {
		return
	}
	if width, err = intOpt(opts, "--width"); err != nil {
		return
	}
	height, err = intOpt(opts, "--height")
	return
}
