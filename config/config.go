// Package config provides configuration loading and management for ontodash.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontodash configuration
type Config struct {
	Registry   RegistryConfig   `yaml:"registry"`
	Ontologies OntologiesConfig `yaml:"ontologies"`
	Reports    ReportsConfig    `yaml:"reports"`
	Relations  RelationsConfig  `yaml:"relations"`
}

// RegistryConfig configures where the registry pages live
type RegistryConfig struct {
	// Dir is the directory holding the ontology markdown pages
	Dir string `yaml:"dir"`
	// Pattern is the doublestar glob for pages, relative to Dir
	Pattern string `yaml:"pattern"`
}

// OntologiesConfig configures where ontology artifacts are found
type OntologiesConfig struct {
	// Dir is the directory holding downloaded ontology artifacts
	Dir string `yaml:"dir"`
	// LargeFileBytes is the artifact size above which the streaming
	// extractor is used instead of loading a structured model
	LargeFileBytes int64 `yaml:"large_file_bytes"`
}

// ReportsConfig configures report output
type ReportsConfig struct {
	// Dir is the root directory for generated reports
	Dir string `yaml:"dir"`
}

// RelationsConfig configures the canonical relations source
type RelationsConfig struct {
	// SourcePath is the local copy of the relations ontology the
	// reference mapping is built from
	SourcePath string `yaml:"source_path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Dir:     "ontology",
			Pattern: "*.md",
		},
		Ontologies: OntologiesConfig{
			Dir:            "ontologies",
			LargeFileBytes: 256 << 20, // 256 MiB
		},
		Reports: ReportsConfig{
			Dir: "reports",
		},
		Relations: RelationsConfig{
			SourcePath: filepath.Join("ontologies", "ro.owl"),
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Registry.Dir == "" {
		return fmt.Errorf("registry.dir is required")
	}
	if c.Ontologies.Dir == "" {
		return fmt.Errorf("ontologies.dir is required")
	}
	if c.Reports.Dir == "" {
		return fmt.Errorf("reports.dir is required")
	}
	if c.Ontologies.LargeFileBytes <= 0 {
		return fmt.Errorf("ontologies.large_file_bytes must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Registry
	if other.Registry.Dir != "" {
		c.Registry.Dir = other.Registry.Dir
	}
	if other.Registry.Pattern != "" {
		c.Registry.Pattern = other.Registry.Pattern
	}

	// Ontologies
	if other.Ontologies.Dir != "" {
		c.Ontologies.Dir = other.Ontologies.Dir
	}
	if other.Ontologies.LargeFileBytes != 0 {
		c.Ontologies.LargeFileBytes = other.Ontologies.LargeFileBytes
	}

	// Reports
	if other.Reports.Dir != "" {
		c.Reports.Dir = other.Reports.Dir
	}

	// Relations
	if other.Relations.SourcePath != "" {
		c.Relations.SourcePath = other.Relations.SourcePath
	}
}
