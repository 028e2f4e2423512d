// Package config handles loading and parsing winnow configuration files.
//
// # Overview
//
// This package reads winnow's TOML configuration to discover the quarry
// daemon's API endpoint, the index to search, and where local data (query
// history, logs) should live.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/winnow/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/winnow/config.toml
//   - API endpoint: 127.0.0.1:7581
//   - Index: products
//   - Data directory: ~/.local/share/winnow
//   - History database: <data_dir>/history.db
//   - Log file: <data_dir>/winnow.log
//
// # TOML Format
//
// Example config.toml:
//
//	endpoint = "127.0.0.1:7581"
//	index = "products"
//	api_key = "..."
//	data_dir = "~/.local/share/winnow"
//	facets = ["category", "brand", "color"]
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Path Expansion
//
// The package handles several path formats:
//
//   - Absolute paths: Used as-is ("/var/lib/winnow")
//   - Tilde paths: Expanded to home directory ("~/.config/winnow")
//   - Relative paths: Converted to absolute based on current directory
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows winnow to work out-of-the-box against a local daemon.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	client, err := quarry.NewClient(cfg.Endpoint, quarry.WithAPIKey(cfg.APIKey))
//	historyPath := cfg.HistoryPath()
//
// # Design Philosophy
//
// This package follows the principle of sensible defaults. The config
// package is read-only and stateless - it loads configuration once at
// startup and returns an immutable Config struct. No global state or
// singleton patterns are used.
package config
