// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides configuration management for the modelcatalog
// server. It handles loading and parsing the YAML configuration file and
// provides structured access to the server settings and the configured
// provider entries.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/traylinx/modelcatalog/internal/constant"
)

// DefaultPort is the port the API server binds when none is configured.
const DefaultPort = 8317

// Config represents the application's configuration, loaded from a YAML file.
type Config struct {
	// Host is the network host/interface on which the API server will bind.
	// Default is empty ("") to bind all interfaces.
	Host string `yaml:"host"`

	// Port is the network port on which the API server will listen.
	Port int `yaml:"port"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`

	// LoggingToFile controls whether logs go to rotating files or stdout.
	LoggingToFile bool `yaml:"logging-to-file"`

	// Providers lists the configured catalog sources.
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig describes one configured provider entry.
type ProviderConfig struct {
	// ID is the operator-chosen name for this entry, unique per config.
	ID string `yaml:"id"`

	// Type selects the adapter dialect: google, openai, openrouter,
	// mistral or generic.
	Type string `yaml:"type"`

	// BaseURL is the provider API root, e.g. "https://api.openai.com/v1".
	// An empty value is allowed; listing models then yields the empty
	// catalog without any network I/O.
	BaseURL string `yaml:"base-url"`

	// APIKey is the provider credential. Values of the form ${ENV_VAR}
	// are expanded from the environment at load time.
	APIKey string `yaml:"api-key"`
}

var envRefRegex = regexp.MustCompile(`^\$\{(\w+)\}$`)

// LoadConfig reads, parses and validates the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	seen := make(map[string]bool, len(cfg.Providers))
	for i := range cfg.Providers {
		p := &cfg.Providers[i]
		if p.ID == "" {
			return nil, fmt.Errorf("provider entry %d: missing id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate provider id: %s", p.ID)
		}
		seen[p.ID] = true

		switch p.Type {
		case constant.Google, constant.OpenAI, constant.OpenRouter, constant.Mistral, constant.Generic:
		default:
			return nil, fmt.Errorf("provider %s: unknown type %q", p.ID, p.Type)
		}

		if m := envRefRegex.FindStringSubmatch(p.APIKey); m != nil {
			p.APIKey = os.Getenv(m[1])
		}
	}

	return &cfg, nil
}

// Provider returns the entry with the given id, or nil if not configured.
func (c *Config) Provider(id string) *ProviderConfig {
	for i := range c.Providers {
		if c.Providers[i].ID == id {
			return &c.Providers[i]
		}
	}
	return nil
}
