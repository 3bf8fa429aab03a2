package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"verdant/internal/scriptfile"
	"verdant/minijs"
)

type treeStats struct {
	path   string
	nodes  int
	tokens int
	trivia int
	bytes  uint32
}

var statsCmd = &cobra.Command{
	Use:   "stats <script.toml>...",
	Short: "Report node, token, and trivia counts per scripted tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]treeStats, len(args))
		var g errgroup.Group
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				script, err := scriptfile.Load(path)
				if err != nil {
					return fmt.Errorf("load script: %w", err)
				}
				root, err := script.Build()
				if err != nil {
					return fmt.Errorf("build %s: %w", path, err)
				}
				results[i] = collectStats(path, root)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		header := headerColor(colorEnabled(cmd))
		for _, st := range results {
			header.Fprintf(out, "%s\n", st.path)
			fmt.Fprintf(out, "  nodes:  %d\n", st.nodes)
			fmt.Fprintf(out, "  tokens: %d\n", st.tokens)
			fmt.Fprintf(out, "  trivia: %d piece(s)\n", st.trivia)
			fmt.Fprintf(out, "  bytes:  %d\n", st.bytes)
		}
		return nil
	},
}

func collectStats(path string, root minijs.Node) treeStats {
	st := treeStats{path: path, bytes: root.TextRange().Len()}
	it := root.DescendantsWithTokens()
	for el := it.Next(); el != nil; el = it.Next() {
		if tok := el.Token(); tok != nil {
			st.tokens++
			st.trivia += len(tok.LeadingTrivia().Pieces()) + len(tok.TrailingTrivia().Pieces())
			continue
		}
		st.nodes++
	}
	return st
}
