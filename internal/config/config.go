package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig configures how documents are loaded.
type CorpusConfig struct {
	Language string `yaml:"language"`
}

// TokenizerConfig bounds tokenization.
type TokenizerConfig struct {
	MaxSize int `yaml:"max_size"`
}

// SegmenterConfig configures optional token segmentation. A size of 0
// disables the stage.
type SegmenterConfig struct {
	Size int `yaml:"size"`
	Step int `yaml:"step"`
}

// VectorizerConfig selects the n-gram model and weighting scheme.
type VectorizerConfig struct {
	MFI         int    `yaml:"mfi"`
	NgramType   string `yaml:"ngram_type"`
	NgramSize   int    `yaml:"ngram_size"`
	VectorSpace string `yaml:"vector_space"`
}

// QdrantConfig contains connection details for a Qdrant store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKey      string `yaml:"api_key"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// StoreConfig selects the similarity store backend used for browsing.
type StoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// OutputConfig names the artifact written by the pipeline.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Store      StoreConfig      `yaml:"store"`
	Output     OutputConfig     `yaml:"output"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/stylo/config.yaml.
// If neither exists, it writes defaults to ~/.config/stylo/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stylo", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Corpus:     CorpusConfig{Language: "en"},
		Tokenizer:  TokenizerConfig{MaxSize: 50000},
		Segmenter:  SegmenterConfig{},
		Vectorizer: VectorizerConfig{MFI: 100, NgramType: "word", NgramSize: 1, VectorSpace: "tf"},
		Store:      StoreConfig{Type: "memory"},
		Output:     OutputConfig{Path: "corpus.bin"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Corpus.Language == "" {
		cfg.Corpus.Language = "en"
	}
	if cfg.Tokenizer.MaxSize == 0 {
		cfg.Tokenizer.MaxSize = 50000
	}
	if cfg.Vectorizer.MFI == 0 {
		cfg.Vectorizer.MFI = 100
	}
	if cfg.Vectorizer.NgramType == "" {
		cfg.Vectorizer.NgramType = "word"
	}
	if cfg.Vectorizer.NgramSize == 0 {
		cfg.Vectorizer.NgramSize = 1
	}
	if cfg.Vectorizer.VectorSpace == "" {
		cfg.Vectorizer.VectorSpace = "tf"
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = "memory"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "corpus.bin"
	}
}
