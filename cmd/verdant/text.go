package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdant/internal/scriptfile"
)

var textCmd = &cobra.Command{
	Use:   "text <script.toml>",
	Short: "Print the exact source text the scripted tree reconstructs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := scriptfile.Load(args[0])
		if err != nil {
			return fmt.Errorf("load script: %w", err)
		}
		root, err := script.Build()
		if err != nil {
			return fmt.Errorf("build tree: %w", err)
		}
		// Byte-exact output: no added newline.
		fmt.Fprint(cmd.OutOrStdout(), root.Text())
		return nil
	},
}
