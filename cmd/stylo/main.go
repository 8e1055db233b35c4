// Package main provides the stylo command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stylo/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "stylo",
	Short: "Stylometric corpus vectorization pipeline",
	Long:  "Stylo loads a directory of plain-text documents, normalizes and tokenizes them, builds a most-frequent-items document-term matrix and serializes it to a single binary artifact.",
}

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config (default: ./config.yaml, then ~/.config/stylo/config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.AppConfig, error) {
	if cfgPath == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(cfgPath)
}

func newLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger.WithField("service", "stylo")
}
