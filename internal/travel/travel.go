// Package travel resolves how much a move costs for a player from the
// progression facts they hold. Resolution is an ordered, first-match scan
// over a rule table; it never looks at balances.
package travel

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
)

// Resource is the balance a move is paid from
type Resource string

const (
	ResourceTravel Resource = "travel"
	ResourceSpirit Resource = "spirit"
)

// Policy is the outcome of resolution.
type Policy struct {
	Resource             Resource `json:"resource" yaml:"resource"`
	MoveCost             int      `json:"move_cost" yaml:"move_cost"`
	CrossMapCost         int      `json:"cross_map_cost" yaml:"cross_map_cost"`
	CanBypassLockedZones bool     `json:"can_bypass_locked_zones" yaml:"can_bypass_locked_zones"`
}

// Cost returns the price of one move.
func (p Policy) Cost(crossMap bool) int {
	if crossMap {
		return p.CrossMapCost
	}
	return p.MoveCost
}

// DefaultPolicy applies when no rule matches.
func DefaultPolicy() Policy {
	return Policy{
		Resource:     ResourceTravel,
		MoveCost:     1,
		CrossMapCost: 3,
	}
}

// Rule matches players holding PathwayName at a sequence in [MinSeq, MaxSeq].
type Rule struct {
	PathwayName string `json:"pathway_name" yaml:"pathway_name"`
	MinSeq      int    `json:"min_seq" yaml:"min_seq"`
	MaxSeq      int    `json:"max_seq" yaml:"max_seq"`
	Policy      `yaml:",inline"`
}

// Matches reports whether any fact satisfies the rule.
func (r Rule) Matches(facts []entities.ProgressionFact) bool {
	for _, f := range facts {
		if f.PathwayName == r.PathwayName && f.Sequence >= r.MinSeq && f.Sequence <= r.MaxSeq {
			return true
		}
	}
	return false
}

// Validate checks one rule in isolation.
func (r Rule) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("pathway_name", r.PathwayName, vb)
	if r.MinSeq > r.MaxSeq {
		vb.InvalidField("min_seq", "must not exceed max_seq")
	}
	errors.ValidateEnum("resource", string(r.Resource), []string{string(ResourceTravel), string(ResourceSpirit)}, vb)
	if r.MoveCost < 0 {
		vb.InvalidField("move_cost", "must not be negative")
	}
	if r.CrossMapCost < 0 {
		vb.InvalidField("cross_map_cost", "must not be negative")
	}
	return vb.Build()
}

// DefaultRules is the campaign's built-in table. Apprentices early in the
// pathway walk on spirituality; the whole apprenticeship may pass locked zones.
func DefaultRules() []Rule {
	return []Rule{
		{
			PathwayName: "ลูกศิษย์",
			MinSeq:      0,
			MaxSeq:      5,
			Policy: Policy{
				Resource:             ResourceSpirit,
				MoveCost:             1,
				CrossMapCost:         1,
				CanBypassLockedZones: true,
			},
		},
		{
			PathwayName: "ลูกศิษย์",
			MinSeq:      0,
			MaxSeq:      9,
			Policy: Policy{
				Resource:             ResourceTravel,
				MoveCost:             1,
				CrossMapCost:         3,
				CanBypassLockedZones: true,
			},
		},
	}
}

// Resolver picks a Policy from an ordered rule table.
type Resolver struct {
	rules    []Rule
	fallback Policy
}

// Config configures a Resolver
type Config struct {
	// Rules in priority order; nil uses DefaultRules.
	Rules []Rule
	// Fallback overrides DefaultPolicy when set.
	Fallback *Policy
}

// Validate checks every rule
func (c *Config) Validate() error {
	for i, r := range c.Rules {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, "rule %d", i)
		}
	}
	return nil
}

// NewResolver builds a resolver; the table is copied so later edits to the
// caller's slice do not leak in.
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	fallback := DefaultPolicy()
	if cfg.Fallback != nil {
		fallback = *cfg.Fallback
	}

	return &Resolver{
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}, nil
}

// Resolve returns the policy of the first rule any fact satisfies, or the
// fallback policy.
func (r *Resolver) Resolve(facts []entities.ProgressionFact) Policy {
	for _, rule := range r.rules {
		if rule.Matches(facts) {
			return rule.Policy
		}
	}
	return r.fallback
}

// Rules returns a copy of the table in resolution order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}
