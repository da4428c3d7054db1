package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/0xef53/statshim/core"
	"github.com/0xef53/statshim/pkg/statshim"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Format     string `yaml:"format"`
	PasswdFile string `yaml:"passwd_file"`
	GroupFile  string `yaml:"group_file"`
	DirMode    string `yaml:"dir_mode"`
}

func defaultConfig() *Config {
	return &Config{
		Format:     "json",
		PasswdFile: core.DefaultPasswdFile,
		GroupFile:  core.DefaultGroupFile,
		DirMode:    "0755",
	}
}

// loadConfig applies the configuration file over the defaults
// and the command line flags over both.
func loadConfig(c *cli.Command) (*Config, error) {
	cfg := defaultConfig()

	if fpath := c.String("config"); len(fpath) != 0 {
		b, err := os.ReadFile(fpath)
		if err != nil {
			return nil, err
		}

		if err := yaml.UnmarshalStrict(b, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", fpath, err)
		}
	}

	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("passwd-file") {
		cfg.PasswdFile = c.String("passwd-file")
	}
	if c.IsSet("group-file") {
		cfg.GroupFile = c.String("group-file")
	}

	switch cfg.Format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Format)
	}

	if _, err := parseMode(cfg.DirMode); err != nil {
		return nil, fmt.Errorf("invalid dir_mode: %w", err)
	}

	return cfg, nil
}

func parseMode(s string) (statshim.Mode, error) {
	m, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}

	if m&^07777 != 0 {
		return 0, fmt.Errorf("mode out of range: %s", s)
	}

	return statshim.Mode(m), nil
}
