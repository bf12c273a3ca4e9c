// Command hasami is the terminal driver for the Hasami Shogi engine: an
// external collaborator of the core (§1) that prints the board, reads
// moves, and queries the search when a side is played by the engine.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	searchDepth int
	redIsAI     bool
	blackIsAI   bool
	noUndo      bool
	verbose     bool
)

func main() {
	root := &cobra.Command{
		Use:   "hasami",
		Short: "Play or watch Hasami Shogi from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			return runREPL(replConfig{
				SearchDepth: searchDepth,
				RedIsAI:     redIsAI,
				BlackIsAI:   blackIsAI,
				AllowUndo:   !noUndo,
				Log:         log,
			})
		},
	}

	root.Flags().IntVar(&searchDepth, "depth", 4, "search depth for any side played by the engine")
	root.Flags().BoolVar(&redIsAI, "red", false, "have the engine play RED")
	root.Flags().BoolVar(&blackIsAI, "black", false, "have the engine play BLACK")
	root.Flags().BoolVar(&noUndo, "no-undo", false, "disable the 'undo' token")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search stats to stderr")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
