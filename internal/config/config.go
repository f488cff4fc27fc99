// Package config holds the process-wide generator configuration: section
// geometry and closure tolerances. The schema is a JSON file with optional
// fields; anything omitted falls back to the defaults of the standard
// 1:24-scale section catalogue (0.3 m turn radius, 0.345 m straights).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the geometry configuration for track generation.
// Fields are pointers so partial JSON files are safe: omitted fields keep
// their defaults via the Get* accessors. Thread one immutable *Config into
// the engine rather than mutating it between runs.
type Config struct {
	// Section geometry (meters). Each turn section subtends a 60° arc.
	TurnSectionRadius     *float64 `json:"turn_section_radius,omitempty"`
	StraightSectionLength *float64 `json:"straight_section_length,omitempty"`

	// Closure tolerances: positional (meters) and angular (radians).
	LapTolerance         *float64 `json:"lap_tolerance,omitempty"`
	OrientationTolerance *float64 `json:"orientation_tolerance,omitempty"`

	// Minimum distance (meters) between non-adjacent section joints of a
	// completed layout. nil = 0.6 × straight length; explicit 0 disables.
	MinClearance *float64 `json:"min_clearance,omitempty"`
}

// Default returns a Config with all fields unset, i.e. catalogue defaults.
func Default() *Config {
	return &Config{}
}

// Load reads a Config from a JSON file. Fields omitted from the file retain
// their defaults, so partial configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that any explicitly set values are usable. It is called
// before any search begins so bad geometry fails fast.
func (c *Config) Validate() error {
	if c.TurnSectionRadius != nil && *c.TurnSectionRadius <= 0 {
		return fmt.Errorf("turn_section_radius must be positive, got %g", *c.TurnSectionRadius)
	}
	if c.StraightSectionLength != nil && *c.StraightSectionLength <= 0 {
		return fmt.Errorf("straight_section_length must be positive, got %g", *c.StraightSectionLength)
	}
	if c.LapTolerance != nil && *c.LapTolerance < 0 {
		return fmt.Errorf("lap_tolerance must be non-negative, got %g", *c.LapTolerance)
	}
	if c.OrientationTolerance != nil && *c.OrientationTolerance < 0 {
		return fmt.Errorf("orientation_tolerance must be non-negative, got %g", *c.OrientationTolerance)
	}
	if c.MinClearance != nil && *c.MinClearance < 0 {
		return fmt.Errorf("min_clearance must be non-negative, got %g", *c.MinClearance)
	}
	return nil
}

// GetTurnSectionRadius returns the turn section radius or the default.
func (c *Config) GetTurnSectionRadius() float64 {
	if c.TurnSectionRadius == nil {
		return 0.3
	}
	return *c.TurnSectionRadius
}

// GetStraightSectionLength returns the straight section length or the default.
func (c *Config) GetStraightSectionLength() float64 {
	if c.StraightSectionLength == nil {
		return 0.345
	}
	return *c.StraightSectionLength
}

// GetLapTolerance returns the lap tolerance or the default.
func (c *Config) GetLapTolerance() float64 {
	if c.LapTolerance == nil {
		return 0.05
	}
	return *c.LapTolerance
}

// GetOrientationTolerance returns the orientation tolerance or the default.
func (c *Config) GetOrientationTolerance() float64 {
	if c.OrientationTolerance == nil {
		return 0.01
	}
	return *c.OrientationTolerance
}

// GetMinClearance returns the minimum joint clearance. When unset it scales
// with the straight section length so the corridor heuristic tracks the
// catalogue in use.
func (c *Config) GetMinClearance() float64 {
	if c.MinClearance == nil {
		return 0.6 * c.GetStraightSectionLength()
	}
	return *c.MinClearance
}
