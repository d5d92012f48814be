package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/driver"
)

var pressCommand = &cli.Command{
	Name:      "press",
	Usage:     "Press a device key (back, home)",
	ArgsUsage: "<back|home>",
	Action: func(c *cli.Context) error {
		key := c.Args().First()
		if key != "back" && key != "home" {
			return core.ErrInvalidChoice.WithCause(fmt.Errorf("unknown key %q (use back or home)", key))
		}

		sess, err := openSession(c)
		if err != nil {
			return err
		}
		defer sess.close()

		d := driver.New(sess.client)
		if key == "back" {
			return d.PressBack()
		}
		return d.PressHome()
	},
}
