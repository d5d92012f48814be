package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var elementsCommand = &cli.Command{
	Name:  "elements",
	Usage: "Dump the interactable elements of the current screen as YAML",
	Action: func(c *cli.Context) error {
		sess, err := openSession(c)
		if err != nil {
			return err
		}
		defer sess.close()

		entries, err := sess.buildCatalog()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}

		fmt.Fprintf(os.Stdout, "# %d interactable elements\n", len(entries))
		os.Stdout.Write(data)
		return nil
	},
}

var nameCommand = &cli.Command{
	Name:  "name",
	Usage: "Print the resolved identifier of the current screen",
	Action: func(c *cli.Context) error {
		sess, err := openSession(c)
		if err != nil {
			return err
		}
		defer sess.close()

		entries, err := sess.buildCatalog()
		if err != nil {
			return err
		}

		fmt.Println(sess.resolver().Resolve(entries, sess.appReader()))
		return nil
	},
}
