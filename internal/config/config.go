// Package config loads application settings from the environment and
// house conversion rules from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Config holds application settings. Values come from COOKBOOK_*
// environment variables, typically via a .env file.
type Config struct {
	// StoreDir is where recipes are persisted as JSON. Empty means
	// in-memory storage only.
	StoreDir string `envconfig:"STORE" default:""`

	// RulesFile points at a YAML file of house conversion rules.
	RulesFile string `envconfig:"RULES" default:""`

	// LogFile receives log output. "stderr" logs to the console.
	LogFile string `envconfig:"LOG" default:"stderr"`
}

// Load reads configuration from COOKBOOK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("cookbook", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// ruleSpec is the YAML shape of a single conversion rule.
type ruleSpec struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	Factor     float64 `yaml:"factor"`
	Ingredient string  `yaml:"ingredient"`
}

type rulesFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

// LoadHouseRules parses a YAML rules file into conversion rules. Units
// are resolved by name or abbreviation; unknown units or non-positive
// factors are errors.
func LoadHouseRules(path string) ([]domain.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	rules := make([]domain.Rule, 0, len(parsed.Rules))
	for i, spec := range parsed.Rules {
		from, ok := domain.ResolveUnit(spec.From)
		if !ok {
			return nil, fmt.Errorf("%s: rule %d: unknown unit %q", path, i+1, spec.From)
		}
		to, ok := domain.ResolveUnit(spec.To)
		if !ok {
			return nil, fmt.Errorf("%s: rule %d: unknown unit %q", path, i+1, spec.To)
		}

		var rule domain.Rule
		if spec.Ingredient != "" {
			rule, err = domain.NewIngredientRule(from, to, spec.Factor, spec.Ingredient)
		} else {
			rule, err = domain.NewRule(from, to, spec.Factor)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", path, i+1, err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
