package main

import (
	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func runCmd(app *AppConfig) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "run op...",
		Short: "Apply operations to a new tree and print the results",
		Long: `Apply operations to a new tree of the configured kind. Operations are
insert:N, delete:N, remove:N (fails if N is missing), traverse:ORDER,
print and verify.`,
		Example: "treeviz run --tree.kind avl insert:5 insert:3 insert:1 traverse:inorder print",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			ops, err := parseOps(args)
			if err != nil {
				return err
			}

			return apply(cmd.OutOrStdout(), tree.New(app.Tree.Kind, nil), ops)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
