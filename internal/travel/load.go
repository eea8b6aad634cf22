package travel

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-atlas/internal/errors"
)

// File is the on-disk layout of a rule table.
//
//	default:
//	  resource: travel
//	  move_cost: 1
//	  cross_map_cost: 3
//	rules:
//	  - pathway_name: ลูกศิษย์
//	    min_seq: 0
//	    max_seq: 5
//	    resource: spirit
//	    move_cost: 1
//	    cross_map_cost: 1
type File struct {
	Default *Policy `yaml:"default"`
	Rules   []Rule  `yaml:"rules"`
}

// LoadRules reads a YAML rule table. Unknown keys are rejected so typos do
// not silently fall back to the default policy.
func LoadRules(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read travel rules %s", path)
	}
	return ParseRules(raw)
}

// ParseRules decodes a YAML rule table.
func ParseRules(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "decode travel rules")
	}

	cfg := &Config{Rules: f.Rules, Fallback: f.Default}
	if cfg.Rules == nil {
		cfg.Rules = []Rule{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
