package commands

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "prints the resolved config and the first round's grid",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(os.Stderr); err != nil {
			return err
		}
		return dump(os.Stdout)
	},
}

func dump(w io.Writer) error {
	g, err := newGame(w)
	if err != nil {
		return err
	}
	spew.Fdump(w, g.Config)
	return g.Dump()
}
