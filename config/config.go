// Package config loads and saves the CLI front-end's persisted connection
// profile: the RPC endpoint, ABI/keys file locations, and last-used
// contract address, stored as plain JSON (tonlabs-cli.conf.json in
// original_source/tonlabs-cli), the same encoding/json-only style the
// teacher uses for its own JSON config types (elasticproxy/proxy_http/config.go).
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config mirrors the persisted CLI configuration file. Every field is
// optional in the file: fields it leaves out keep the values from Default()
// (URL and Retries set, the rest empty or zero), and each CLI subcommand
// fills in only what it needs before writing the file back.
type Config struct {
	URL      string `json:"url,omitempty"`
	ABIPath  string `json:"abi_path,omitempty"`
	KeysPath string `json:"keys_path,omitempty"`
	Addr     string `json:"addr,omitempty"`
	Wc       int    `json:"wc,omitempty"`
	Retries  int    `json:"retries,omitempty"`
}

// Default returns the configuration new installs start from.
func Default() *Config {
	return &Config{
		URL:     "net.ton.dev",
		Wc:      0,
		Retries: 3,
	}
}

// Load reads a Config from path. A missing file is not an error: it returns
// Default() so a first invocation of the CLI has something sensible to work
// with and to eventually save.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, overwriting any existing file.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// String renders the fields a user would want to see from `tvmtool config`,
// never including any key material.
func (c *Config) String() string {
	return fmt.Sprintf("url: %s\nabi_path: %s\nkeys_path: %s\naddr: %s\nwc: %d\nretries: %d",
		c.URL, c.ABIPath, c.KeysPath, c.Addr, c.Wc, c.Retries)
}
