// Package config loads the scheduler's round-configuration file: layout
// dimensions, utility curve, per-tile block budgets, cache geometry, and
// planner selection. Follows the YAML-with-strict-field-checking
// convention used elsewhere in this codebase's lineage for exactly this
// kind of operator-facing config.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full structure of a scheduler round's config file.
type Config struct {
	Dim                uint32    `yaml:"dim"`
	Factor             uint32    `yaml:"factor"`
	Utility            []float32 `yaml:"utility"`
	BlocksPerQuery     []int     `yaml:"blocks_per_query"`
	CacheSize          int       `yaml:"cache_size"`
	Batch              int       `yaml:"batch"`
	Planner            string    `yaml:"planner"` // "greedy" (default) or "bfs"
	NumQueriesSearched int       `yaml:"num_queries_searched"`
	Seed               int64     `yaml:"seed"`
	PerSlotDelayMs     int       `yaml:"per_slot_delay_ms"`
}

// Load reads and strictly parses a YAML config file at path. Unknown
// fields are rejected so a typo in operator-facing config fails loudly
// instead of silently defaulting.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the structural invariants required before a planner
// is constructed from this config.
func (c Config) Validate() error {
	if c.Factor == 0 {
		return fmt.Errorf("config: factor must be > 0")
	}
	q := int(c.Factor) * int(c.Factor)
	if len(c.BlocksPerQuery) != q {
		return fmt.Errorf("config: blocks_per_query has %d entries, want %d (factor^2)", len(c.BlocksPerQuery), q)
	}
	k := len(c.Utility)
	for i, b := range c.BlocksPerQuery {
		if b > k {
			return fmt.Errorf("config: blocks_per_query[%d]=%d exceeds utility curve length %d", i, b, k)
		}
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: cache_size must be > 0")
	}
	if c.Batch <= 0 {
		return fmt.Errorf("config: batch must be > 0")
	}
	return nil
}
