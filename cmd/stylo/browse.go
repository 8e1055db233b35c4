package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stylo/internal/artifact"
	"stylo/internal/config"
	"stylo/internal/domain"
	"stylo/internal/service"
	"stylo/internal/store"
	"stylo/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the artifact interactively by document similarity",
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
		st, err := newStore(cfg)
		if err != nil {
			return err
		}
		browser, err := service.NewBrowser(a, st)
		if err != nil {
			return err
		}
		m := tui.New(browser, browser.Headline())
		_, err = tea.NewProgram(m).Run()
		return err
	},
	SilenceUsage: true,
}

func newStore(cfg *config.AppConfig) (domain.Store, error) {
	switch cfg.Store.Type {
	case "memory", "":
		return store.NewMemoryStore(), nil
	case "qdrant":
		if cfg.Store.Qdrant == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		return store.NewQdrantStore(store.QdrantConfig{
			URL:        cfg.Store.Qdrant.URL,
			APIKey:     cfg.Store.Qdrant.APIKey,
			Collection: cfg.Store.Qdrant.Collection,
			Timeout:    time.Duration(cfg.Store.Qdrant.TimeoutSecs) * time.Second,
		}), nil
	default:
		return nil, fmt.Errorf("unknown store: %s", cfg.Store.Type)
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
