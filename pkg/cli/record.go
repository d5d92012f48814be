package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiscribe/pkg/codegen"
	"github.com/devicelab-dev/uiscribe/pkg/console"
	"github.com/devicelab-dev/uiscribe/pkg/driver"
	"github.com/devicelab-dev/uiscribe/pkg/logger"
	"github.com/devicelab-dev/uiscribe/pkg/recorder"
	"github.com/devicelab-dev/uiscribe/pkg/script"
)

var recordCommand = &cli.Command{
	Name:  "record",
	Usage: "Interactively record screen actions and generate a Python script",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the generated script to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "apply",
			Usage: "Apply each recorded action on the device as it is recorded",
		},
		&cli.Float64Flag{
			Name:  "stability-delay",
			Usage: "Seconds slept after each emitted action",
		},
	},
	Action: runRecord,
}

func runRecord(c *cli.Context) error {
	sess, err := openSession(c)
	if err != nil {
		return err
	}
	defer sess.close()

	con := console.Default()
	emitter := codegen.NewEmitter()
	if d := c.Float64("stability-delay"); d > 0 {
		emitter.StabilityDelay = d
	} else if sess.cfg.StabilityDelay > 0 {
		emitter.StabilityDelay = sess.cfg.StabilityDelay
	}

	var defs []script.ScreenDefinition

	for {
		con.Printf("\nEnsure you are on the screen you want to define.\n")
		if _, err := con.Prompt("Press Enter to analyze the current screen..."); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		con.Printf("Attempting to get screen elements...\n")
		entries, err := sess.buildCatalog()
		if err != nil {
			con.Errorf("could not inspect screen: %v\n", err)
			logger.Error("catalog build failed: %v", err)
			entries = nil
		}
		if len(entries) > 0 {
			con.Printf("Found %d interactable elements.\n", len(entries))
		} else {
			con.Printf("No interactable elements found on this screen.\n")
		}

		name := sess.resolver().Resolve(entries, sess.appReader())
		con.Printf("Generated screen name: '%s'\n", name)

		rec := recorder.New(con, entries)
		if c.Bool("apply") {
			rec.SetPerformer(driver.New(sess.client))
		}

		actions, err := rec.Record(name)
		if err != nil {
			return err
		}
		if len(actions) == 0 {
			con.Printf("No actions recorded for screen: %s.\n", name)
		}

		def := script.ScreenDefinition{Name: name, Actions: actions}
		defs = append(defs, def)

		con.Headerf("\n--- Generated Python Function for screen: %s ---\n", name)
		con.Printf("%s\n", emitter.ScreenFunction(def))
		con.Headerf("--- End of Python Function for screen: %s ---\n", name)

		more, err := con.Confirm("\nDo you want to define actions for another screen?")
		if err != nil || !more {
			break
		}
		con.Printf("\nPlease navigate to the new screen on your device.\n")
	}

	if len(defs) == 0 {
		con.Printf("\nNothing recorded.\n")
		return nil
	}

	path := c.String("output")
	if path == "" {
		path = sess.cfg.Output
	}
	return writeOutput(path, con, emitter.Combine(defs))
}

// writeOutput delivers the combined script to the given file, or to
// stdout when no path is set.
func writeOutput(path string, con *console.Console, content string) error {
	if path == "" {
		con.Printf("\n\n%s", content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	con.Successf("\nGenerated script written to %s\n", path)
	return nil
}
