package main

import (
	"fmt"
	"os"

	"github.com/csePriyanshu/tree-visualizer/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	app := &AppConfig{}
	parser, err := config.Generate(app)
	if err != nil {
		panic(err)
	}

	cmd := parser.Command()
	cmd.Short = "Binary, search and AVL tree playground"
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return parser.Load()
	}

	cmd.AddCommand(serveCmd(app))
	cmd.AddCommand(runCmd(app))
	cmd.AddCommand(compareCmd(app))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
