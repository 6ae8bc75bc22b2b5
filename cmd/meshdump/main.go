// meshdump is a CLI utility that decodes a model and prints its index,
// placement and spin without opening a window.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "index":
		err = cmdIndex(args, stdout)
	case "place":
		err = cmdPlace(args, stdout)
	case "spin":
		err = cmdSpin(args, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, errUsage) {
		printUsage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshdump - model placement inspector

Usage:
  meshdump <command> [options] <model.glb|model.gltf>

Commands:
  index <model>                      List node names and their geometry
  place <model>                      Print grid positions and orientations
  spin  <model>                      Place, then advance the spin and print

Options:
  -config <file>     Apply a meshgrid config file
  -seed <hex>        Placement seed (64 hex characters)
  -columns <n>       Grid columns
  -timeout <d>       Give up decoding after this long (default 30s)
  -log-level <lvl>   Log to stderr at this level
  -ticks <n>         Ticks to run (spin only)
  -dt <seconds>      Seconds per tick (spin only)

Examples:
  meshdump index models/iroha.glb
  meshdump place -columns 4 models/iroha.glb
  meshdump spin -ticks 60 -dt 0.016 models/iroha.glb`)
}
