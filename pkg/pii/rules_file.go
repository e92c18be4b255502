package pii

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRules reads a YAML rule file from disk. Empty sections inherit the
// defaults so a rule file can extend one axis without restating the other.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("pii: read rules %s: %w", path, err)
	}
	return decodeRules(data, path)
}

// LoadRulesFS reads a YAML rule file from an fs.FS.
func LoadRulesFS(files fs.FS, name string) (RuleSet, error) {
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return RuleSet{}, fmt.Errorf("pii: read rules %s: %w", name, err)
	}
	return decodeRules(data, name)
}

func decodeRules(data []byte, origin string) (RuleSet, error) {
	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("pii: decode rules %s: %w", origin, err)
	}

	defaults := DefaultRuleSet()
	if len(rules.Terms) == 0 {
		rules.Terms = defaults.Terms
	}
	if len(rules.Patterns) == 0 {
		rules.Patterns = defaults.Patterns
	}
	return rules, nil
}
