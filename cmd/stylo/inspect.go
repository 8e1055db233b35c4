package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylo/internal/artifact"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the shape, titles, authors and features of the artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := artifact.Load(cfg.Output.Path)
		if err != nil {
			return err
		}
		labels, ints := a.AuthorIndex()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "shape: (%d, %d)\n", len(a.Matrix), len(a.Features))
		fmt.Fprintf(out, "titles: %s\n", strings.Join(a.Titles, ", "))
		fmt.Fprintf(out, "authors: %s\n", strings.Join(a.Authors, ", "))
		fmt.Fprintf(out, "classes: %s -> %v\n", strings.Join(labels, ", "), ints)
		fmt.Fprintf(out, "features: %s\n", strings.Join(a.Features, ", "))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
