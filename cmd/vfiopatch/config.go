package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the vfiopatch configuration file
// (~/.config/vfiopatch/config.yaml). Bool fields are pointers so "not set"
// is distinguishable from false.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Trim defaults
	SkipWarning        *bool `yaml:"skip_warning"`
	IgnoreSanityCheck  *bool `yaml:"ignore_sanity_check"`
	DisableFooterStrip *bool `yaml:"disable_footer_strip"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vfiopatch", "config.yaml")
}

// loadConfig reads the default config file. A missing or unreadable file is
// not an error; the tool runs fine on flags alone.
func loadConfig() Config {
	return loadConfigFile(configPath())
}

func loadConfigFile(path string) Config {
	var cfg Config
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyTrimConfig fills trim command options from the config file when the
// corresponding CLI flag was not explicitly set.
func applyTrimConfig(c *cli.Command, cfg Config, skipWarning, ignoreSanity, disableFooter *bool) {
	if cfg.SkipWarning != nil && !c.IsSet("skip-the-very-important-warning") {
		*skipWarning = *cfg.SkipWarning
	}
	if cfg.IgnoreSanityCheck != nil && !c.IsSet("ignore-sanity-check") {
		*ignoreSanity = *cfg.IgnoreSanityCheck
	}
	if cfg.DisableFooterStrip != nil && !c.IsSet("disable-footer-strip") {
		*disableFooter = *cfg.DisableFooterStrip
	}
}

// applyServeConfig fills the serve address from the config file when the
// flag was not set.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
}
