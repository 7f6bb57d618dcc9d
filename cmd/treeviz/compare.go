package main

import (
	"context"
	"io"
	"sort"

	"github.com/csePriyanshu/tree-visualizer/concurrent"
	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var compareKinds = []tree.Kind{tree.Binary, tree.Search, tree.Balanced}

// comparison is the outcome of inserting the same values into
// one tree variant
type comparison struct {
	Kind   tree.Kind
	Len    int
	Height int
	Root   int
	Valid  bool
}

func compareCmd(app *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "compare value...",
		Short:   "Insert the same values into every tree variant and compare the results",
		Example: "treeviz compare 1 2 3 4 5 6 7",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := tree.ParseValue(arg)
				if err != nil {
					return err
				}
				values = append(values, v)
			}

			results, err := compare(cmd.Context(), values)
			if err != nil {
				return err
			}

			renderComparison(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

// compare builds one tree per variant in parallel. Each tree is owned
// by the goroutine that builds it
func compare(ctx context.Context, values []int) ([]comparison, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resC := make(chan concurrent.PoolResult, len(compareKinds))
	pool := concurrent.NewPoolRunnerWithOpts(ctx, concurrent.PoolOpts{
		Concurrency: len(compareKinds),
	})

	for _, kind := range compareKinds {
		if err := pool.Run(concurrent.PoolInput{
			Supplier: concurrent.SupplierFunc(func(ctx context.Context) (interface{}, error) {
				return build(kind, values), nil
			}),
			OutC: resC,
		}); err != nil {
			pool.Stop()
			return nil, err
		}
	}
	pool.Stop()
	close(resC)

	var results []comparison
	for res := range resC {
		if res.Err() != nil {
			return nil, res.Err()
		}
		results = append(results, res.Value().(comparison))
	}

	if len(results) != len(compareKinds) {
		return nil, errors.Wrap(ctx.Err(), "compare interrupted")
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Kind < results[j].Kind
	})
	return results, nil
}

func build(kind tree.Kind, values []int) comparison {
	t := tree.New(kind, nil)
	for _, v := range values {
		t.Insert(v)
	}

	c := comparison{
		Kind:   kind,
		Len:    t.Len(),
		Height: t.Height(),
		Valid:  t.Verify() == nil,
	}
	if root := t.Root(); root != nil {
		c.Root = root.Value
	}
	return c
}

func renderComparison(w io.Writer, results []comparison) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"kind", "len", "height", "root", "valid"})
	for _, r := range results {
		tbl.AppendRow(table.Row{r.Kind.String(), r.Len, r.Height, r.Root, r.Valid})
	}
	tbl.Render()
}
