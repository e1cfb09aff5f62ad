package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.StoreDir)
	assert.Equal(t, "", cfg.RulesFile)
	assert.Equal(t, "stderr", cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("COOKBOOK_STORE", "/tmp/recipes")
	t.Setenv("COOKBOOK_RULES", "/tmp/rules.yaml")
	t.Setenv("COOKBOOK_LOG", "/tmp/cookbook.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/recipes", cfg.StoreDir)
	assert.Equal(t, "/tmp/rules.yaml", cfg.RulesFile)
	assert.Equal(t, "/tmp/cookbook.log", cfg.LogFile)
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHouseRules(t *testing.T) {
	path := writeRules(t, `rules:
  - from: cup
    to: gram
    factor: 120
    ingredient: flour
  - from: cup
    to: ml
    factor: 240
`)

	rules, err := LoadHouseRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, domain.Cup, rules[0].From())
	assert.Equal(t, domain.Gram, rules[0].To())
	assert.Equal(t, 120.0, rules[0].Factor())
	assert.Equal(t, "flour", rules[0].Ingredient())

	assert.True(t, rules[1].IsGeneric())
	assert.Equal(t, domain.Milliliter, rules[1].To())
}

func TestLoadHouseRulesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown from unit", "rules:\n  - from: stone\n    to: gram\n    factor: 2\n"},
		{"unknown to unit", "rules:\n  - from: cup\n    to: stone\n    factor: 2\n"},
		{"zero factor", "rules:\n  - from: cup\n    to: gram\n    factor: 0\n"},
		{"negative factor", "rules:\n  - from: cup\n    to: gram\n    factor: -2\n"},
		{"not yaml", "rules: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadHouseRules(writeRules(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadHouseRulesMissingFile(t *testing.T) {
	_, err := LoadHouseRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
