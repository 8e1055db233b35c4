package main

import (
	"github.com/spf13/cobra"

	"stylo/internal/service"
)

var buildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Load a corpus directory and write the feature artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()
		pipeline := service.NewPipeline(cfg, log)
		return pipeline.Build(args[0], cfg.Output.Path)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
