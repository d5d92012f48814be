// Package cli provides the command-line interface for uiscribe.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiscribe/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"s"},
		Usage:   "Device serial to connect to (auto-detected when omitted)",
		EnvVars: []string{"UISCRIBE_DEVICE"},
	},
	&cli.StringFlag{
		Name:    "socket",
		Usage:   "Unix socket of an already-running UIAutomator2 server",
		EnvVars: []string{"UISCRIBE_SOCKET"},
	},
	&cli.IntFlag{
		Name:    "port",
		Usage:   "Local TCP port of an already-running UIAutomator2 server",
		EnvVars: []string{"UISCRIBE_PORT"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file path (default: ./uiscribe.yaml)",
		EnvVars: []string{"UISCRIBE_CONFIG"},
	},
	&cli.StringFlag{
		Name:  "log",
		Usage: "Log file path",
		Value: "uiscribe.log",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Echo log lines to stderr",
		EnvVars: []string{"UISCRIBE_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "uiscribe",
		Usage:   "Interactive Android UI automation script generator",
		Version: Version,
		Description: `uiscribe inspects the screen of a connected Android device,
lets you record actions against its elements interactively, and emits
a Python uiautomator2 script reproducing them.

Examples:
  uiscribe record
  uiscribe record -o generated_flows.py
  uiscribe elements
  uiscribe name
  uiscribe press back`,
		Flags: GlobalFlags,
		Before: func(c *cli.Context) error {
			if err := logger.Init(c.String("log")); err != nil {
				return err
			}
			logger.SetVerbose(c.Bool("verbose"))
			return nil
		},
		After: func(c *cli.Context) error {
			logger.Close()
			return nil
		},
		Commands: []*cli.Command{
			recordCommand,
			elementsCommand,
			nameCommand,
			pressCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
