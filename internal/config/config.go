// Package config provides environment-driven configuration for the service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultPort      = 8080
	defaultConfigDir = "configs"
	defaultSchemaDir = "schemas"
)

// Config holds the runtime configuration for the service and CLI.
type Config struct {
	Port        int
	DatabaseURL string
	ConfigDir   string // directory holding the static JSON documents
	SchemaDir   string // directory holding the JSON Schemas
}

// FromEnv builds a Config from environment variables.
// PORT defaults to 8080, CONFIG_DIR to "configs" and SCHEMA_DIR to "schemas".
// DATABASE_URL is read but not required; commands that need the database
// check for it themselves.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        defaultPort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ConfigDir:   defaultConfigDir,
		SchemaDir:   defaultSchemaDir,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		cfg.ConfigDir = dir
	}
	if dir := os.Getenv("SCHEMA_DIR"); dir != "" {
		cfg.SchemaDir = dir
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.ConfigDir == "" {
		return fmt.Errorf("config directory cannot be empty")
	}
	if c.SchemaDir == "" {
		return fmt.Errorf("schema directory cannot be empty")
	}
	return nil
}

// TaxonomyPath returns the path to the skills taxonomy document.
func (c *Config) TaxonomyPath() string {
	return filepath.Join(c.ConfigDir, "skills_taxonomy.json")
}

// AliasesPath returns the path to the skill aliases document.
func (c *Config) AliasesPath() string {
	return filepath.Join(c.ConfigDir, "skill_aliases.json")
}

// TemplatesPath returns the path to the plan templates document.
func (c *Config) TemplatesPath() string {
	return filepath.Join(c.ConfigDir, "plan_templates.json")
}

// QuestionBankPath returns the path to the question bank document.
func (c *Config) QuestionBankPath() string {
	return filepath.Join(c.ConfigDir, "question_bank.json")
}

// SchemaPath returns the path to a named JSON Schema.
func (c *Config) SchemaPath(name string) string {
	return filepath.Join(c.SchemaDir, name)
}
