//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/draftforge/evalengine/dimension"
)

// DefaultPassingThreshold is the score at or above which a dimension passes.
const DefaultPassingThreshold = 0.7

// Config is the plain value configuration shared by all evaluators.
// It is fixed at construction time; thresholds never mutate between calls.
type Config struct {
	// PassingThreshold is the pass boundary for every dimension score.
	PassingThreshold float64 `yaml:"passingThreshold"`
	// StrictMode makes any failing dimension fail the whole verdict instead
	// of degrading it to partial.
	StrictMode bool `yaml:"strictMode"`
	// Dimensions is the ordered set of dimensions to run. Empty means all
	// built-ins. Order is observable: summary ties break by it.
	Dimensions []dimension.Dimension `yaml:"dimensions"`
	// Parallelism is the number of dimensions evaluated concurrently.
	// Zero or one evaluates sequentially.
	Parallelism int `yaml:"parallelism"`
}

// NewConfig builds a Config from functional options on top of the defaults.
func NewConfig(opt ...Option) Config {
	cfg := Config{
		PassingThreshold: DefaultPassingThreshold,
		Dimensions:       dimension.All(),
	}
	for _, o := range opt {
		o(&cfg)
	}
	return cfg
}

// Option configures a Config.
type Option func(*Config)

// WithPassingThreshold sets the pass boundary for dimension scores.
func WithPassingThreshold(threshold float64) Option {
	return func(c *Config) {
		c.PassingThreshold = threshold
	}
}

// WithStrictMode toggles the strict aggregation policy.
func WithStrictMode(strict bool) Option {
	return func(c *Config) {
		c.StrictMode = strict
	}
}

// WithDimensions sets the ordered dimensions to evaluate.
func WithDimensions(dims ...dimension.Dimension) Option {
	return func(c *Config) {
		c.Dimensions = append([]dimension.Dimension(nil), dims...)
	}
}

// WithParallelism sets the number of dimensions evaluated concurrently.
func WithParallelism(n int) Option {
	return func(c *Config) {
		c.Parallelism = n
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.PassingThreshold < 0 || c.PassingThreshold > 1 {
		errs = multierror.Append(errs, fmt.Errorf("passing threshold %v out of range [0, 1]", c.PassingThreshold))
	}
	if c.Parallelism < 0 {
		errs = multierror.Append(errs, fmt.Errorf("parallelism %d must not be negative", c.Parallelism))
	}
	seen := make(map[dimension.Dimension]struct{}, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d == "" {
			errs = multierror.Append(errs, fmt.Errorf("empty dimension name"))
			continue
		}
		if _, dup := seen[d]; dup {
			errs = multierror.Append(errs, fmt.Errorf("duplicate dimension %q", d))
		}
		seen[d] = struct{}{}
	}
	return errs.ErrorOrNil()
}

// ConfigFromYAML decodes a Config from YAML, applying defaults for absent
// fields and validating the result.
func ConfigFromYAML(data []byte) (Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode evaluation config: %w", err)
	}
	if len(cfg.Dimensions) == 0 {
		cfg.Dimensions = dimension.All()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate evaluation config: %w", err)
	}
	return cfg, nil
}
