package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pulsenav/settings/internal/nav"
)

// Config holds CLI configuration stored at ~/.pulse-settings/config.
type Config struct {
	DefaultTab   string `yaml:"default_tab"`
	DefaultAgent string `yaml:"default_agent"`
	StartPath    string `yaml:"start_path"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file,omitempty"`
	VimKeys      bool   `yaml:"vim_keys"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultTab:   string(nav.TabProxmox),
		DefaultAgent: string(nav.DefaultAgent),
		StartPath:    nav.SettingsRoot,
		LogLevel:     "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pulse-settings", "config")
}

// Load reads and parses the config file. Returns error if missing, insecure or invalid.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that tab and agent names are known.
func (c *Config) Validate() error {
	if _, ok := nav.ParseTab(c.DefaultTab); !ok {
		return fmt.Errorf("config default_tab %q is not a settings tab", c.DefaultTab)
	}
	if _, ok := nav.ParseAgent(c.DefaultAgent); !ok {
		return fmt.Errorf("config default_agent %q is not an agent", c.DefaultAgent)
	}
	return nil
}

// NavOptions converts the config into navigator options.
func (c *Config) NavOptions() []nav.Option {
	return []nav.Option{
		nav.WithDefaultTab(nav.Tab(c.DefaultTab)),
		nav.WithDefaultAgent(nav.AgentKey(c.DefaultAgent)),
	}
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
