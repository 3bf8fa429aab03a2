package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdant/internal/scriptfile"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <script.toml>",
	Short: "Build the scripted tree and print its structure",
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
		out := cmd.OutOrStdout()
		headerColor(colorEnabled(cmd)).Fprintf(out, "%s\n", args[0])
		fmt.Fprint(out, root.Dump())
		return nil
	},
}
