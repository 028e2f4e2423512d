package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields winnow needs to reach a quarry daemon.
type Config struct {
	Endpoint string
	Index    string
	APIKey   string
	DataDir  string
	Facets   []string
}

const (
	defaultConfigPath = "~/.config/winnow/config.toml"
	defaultDataDir    = "~/.local/share/winnow"
	defaultEndpoint   = "127.0.0.1:7581"
	defaultIndex      = "products"
)

func defaultFacets() []string {
	return []string{"category", "brand", "color"}
}

// Load locates and parses the winnow config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Endpoint: defaultEndpoint,
		Index:    defaultIndex,
		DataDir:  defaultDataDir,
		Facets:   defaultFacets(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint string   `toml:"endpoint"`
		Index    string   `toml:"index"`
		APIKey   string   `toml:"api_key"`
		DataDir  string   `toml:"data_dir"`
		Facets   []string `toml:"facets"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Endpoint = strings.TrimSpace(raw.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.Index = strings.TrimSpace(raw.Index)
	if cfg.Index == "" {
		cfg.Index = defaultIndex
	}

	cfg.APIKey = strings.TrimSpace(raw.APIKey)

	cfg.DataDir = strings.TrimSpace(raw.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	cfg.Facets = cfg.Facets[:0]
	for _, field := range raw.Facets {
		if field = strings.TrimSpace(field); field != "" {
			cfg.Facets = append(cfg.Facets, field)
		}
	}
	if len(cfg.Facets) == 0 {
		cfg.Facets = defaultFacets()
	}

	return cfg, nil
}

// HistoryPath returns the path to the query history database.
func (c Config) HistoryPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/history.db")
	}
	return filepath.Join(c.DataDir, "history.db")
}

// LogPath returns the path to the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/winnow.log")
	}
	return filepath.Join(c.DataDir, "winnow.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
