// Package config loads the optional commentsweep YAML configuration file.
// Loading is three steps: parse, validate the raw document against an
// embedded JSON schema, then apply defaults to whatever was left unset.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config flag
// is given.
const DefaultFile = ".commentsweep.yaml"

// Config is the full tool configuration. Command-line flags override
// these values; see the cmd package for merge order.
type Config struct {
	Version int `json:"version" yaml:"version"`

	// Paths are the default roots to process when none are given on the
	// command line.
	Paths []string `json:"paths" yaml:"paths"`

	// Extensions are the target file extensions, dot included.
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Exclude patterns; substring or doublestar glob per path.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// Aggressive drops every standalone non-doc, non-marker comment.
	Aggressive bool `json:"aggressive" yaml:"aggressive"`

	// ShortCommentLimit is the trivial-comment rune threshold.
	ShortCommentLimit int `json:"short_comment_limit" yaml:"short_comment_limit"`

	// TrivialPhrases mark standalone comments as removable.
	TrivialPhrases []string `json:"trivial_phrases" yaml:"trivial_phrases"`

	// PreserveMarkers are always-kept comment keywords.
	PreserveMarkers []string `json:"preserve_markers" yaml:"preserve_markers"`
}

const schemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "integer"},
    "paths": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "extensions": {"type": "array", "items": {"type": "string", "pattern": "^\\."}},
    "exclude": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "aggressive": {"type": "boolean"},
    "short_comment_limit": {"type": "integer", "minimum": 1},
    "trivial_phrases": {"type": "array", "items": {"type": "string"}},
    "preserve_markers": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

// Default returns the built-in configuration, matching sweep.DefaultOptions
// on the classifier side.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if raw != nil {
		if err := validateAgainstSchema(raw); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if cfg.Version != 1 {
		return nil, fmt.Errorf("config %s: unsupported config version: %d", path, cfg.Version)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"src"}
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".rs"}
	}
	if cfg.ShortCommentLimit == 0 {
		cfg.ShortCommentLimit = 15
	}
	if cfg.TrivialPhrases == nil {
		cfg.TrivialPhrases = []string{
			"update", "set", "get", "return", "create", "init",
			"check", "validate", "handle", "process", "load",
		}
	}
	if cfg.PreserveMarkers == nil {
		cfg.PreserveMarkers = []string{"TODO", "FIXME", "NOTE", "SAFETY", "HACK", "XXX"}
	}
}

// validateAgainstSchema checks the raw YAML document against the embedded
// schema. The document is round-tripped through encoding/json first so the
// validator sees JSON-shaped values.
func validateAgainstSchema(raw any) error {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource("config.schema.json", strings.NewReader(schemaSource)); err != nil {
		return err
	}
	schema, err := c.Compile("config.schema.json")
	if err != nil {
		return err
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("not a valid config document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
