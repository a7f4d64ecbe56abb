// stkexport is a CLI utility for exporting editor scene snapshots into the
// SuperTuxKart data formats.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/antarctica-export/internal/config"
	"github.com/Faultbox/antarctica-export/internal/exporter"
	"github.com/Faultbox/antarctica-export/internal/logger"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "track":
		cmdExport(command, args, (*exporter.Exporter).Track)
	case "kart":
		cmdExport(command, args, (*exporter.Exporter).Kart)
	case "node":
		cmdExport(command, args, (*exporter.Exporter).Node)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stkexport - SuperTuxKart scene exporter

Usage:
  stkexport <command> [options] <scene.yaml>

Commands:
  track <scene.yaml>   Export a track (track.xml, scene.xml, navigation data)
  kart <scene.yaml>    Export a kart (kart.xml)
  node <scene.yaml>    Export a library node (node.xml)

Options (all commands):
  -config <file>       Path to config file
  -output <dir>        Output directory for exported files
  -fps <rate>          Animation frame rate override
  -no-scene            Skip the scene document
  -no-drivelines       Skip the navigation quads and graph
  -no-materials        Skip the material mapping
  -debug               Enable debug logging
  -log-file <file>     Write logs to this file

Examples:
  stkexport track -output ./export volcano.yaml
  stkexport kart tux.yaml
  stkexport node -no-materials streetlamp.yaml`)
}

type runFunc func(*exporter.Exporter, *scene.Scene) (*exporter.Summary, error)

func cmdExport(name string, args []string, run runFunc) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var flags config.Flags
	flags.Register(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: stkexport %s [options] <scene.yaml>\n", name)
		os.Exit(1)
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := scene.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sum, err := run(exporter.New(cfg), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range sum.Files {
		fmt.Println(f)
	}
	if sum.Errors > 0 {
		fmt.Fprintf(os.Stderr, "Export finished with %d error(s) and %d warning(s); "+
			"the output is incomplete.\n", sum.Errors, sum.Warnings)
		os.Exit(2)
	}
	if sum.Warnings > 0 {
		fmt.Fprintf(os.Stderr, "Export finished with %d warning(s).\n", sum.Warnings)
	}
}
