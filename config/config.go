// SPDX-License-Identifier: MIT

// Package config holds the process-wide settings of the ndlite demos:
// which numeric backend to use, the random seed, logging, and the datasets
// of the two demonstrations.
//
// Defaults are the single source of truth (see Default); a YAML file may
// override any subset of them and command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/ndlite/backend"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults for the scores demonstration.
const (
	DefaultStudents       = 5
	DefaultSubjects       = 4
	DefaultScoreLow       = 50
	DefaultScoreHigh      = 101 // exclusive
	DefaultScoreCap       = 100.0
	DefaultScoreThreshold = 90.0
	DefaultMeanDecimals   = 2
)

// Defaults for the temperature demonstration.
const (
	DefaultSumUpTo        = 50000
	DefaultAvgDecimals    = 1
	DefaultRatioDecimals  = 1
	DefaultLogLevel       = "info"
	DefaultLogDevelopment = false
)

// Config is the full configuration tree.
type Config struct {
	Backend     string            `yaml:"backend"`
	Seed        int64             `yaml:"seed"`
	Log         LogConfig         `yaml:"log"`
	Scores      ScoresConfig      `yaml:"scores"`
	Temperature TemperatureConfig `yaml:"temperature"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ScoresConfig drives the student-score analysis.
type ScoresConfig struct {
	Students  int       `yaml:"students"`
	Subjects  int       `yaml:"subjects"`
	Low       int       `yaml:"low"`
	High      int       `yaml:"high"`
	Curve     []float64 `yaml:"curve"`
	Cap       float64   `yaml:"cap"`
	Threshold float64   `yaml:"threshold"`
	Decimals  int       `yaml:"decimals"`
}

// TemperatureConfig drives the temperature and summary-statistics walk-through.
type TemperatureConfig struct {
	Celsius  []float64 `yaml:"celsius"`
	Scores   []float64 `yaml:"scores"`
	SumUpTo  int       `yaml:"sum_upto"`
	Decimals int       `yaml:"decimals"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: string(backend.DefaultKind),
		Seed:    backend.DefaultSeed,
		Log: LogConfig{
			Level:       DefaultLogLevel,
			Development: DefaultLogDevelopment,
		},
		Scores: ScoresConfig{
			Students:  DefaultStudents,
			Subjects:  DefaultSubjects,
			Low:       DefaultScoreLow,
			High:      DefaultScoreHigh,
			Curve:     []float64{5, 3, 7, 2},
			Cap:       DefaultScoreCap,
			Threshold: DefaultScoreThreshold,
			Decimals:  DefaultMeanDecimals,
		},
		Temperature: TemperatureConfig{
			Celsius:  []float64{22, 25, 28, 24, 26},
			Scores:   []float64{85, 90, 78, 92, 88, 76, 95, 82, 89, 91, 87, 84},
			SumUpTo:  DefaultSumUpTo,
			Decimals: DefaultAvgDecimals,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Kind returns the configured backend kind.
func (c Config) Kind() (backend.Kind, error) {
	return backend.ParseKind(c.Backend)
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s := c.Scores
	switch {
	case s.Students <= 0 || s.Subjects <= 0:
		return fmt.Errorf("%w: scores shape must be positive, got (%d, %d)", ErrInvalidConfig, s.Students, s.Subjects)
	case s.Low >= s.High:
		return fmt.Errorf("%w: scores range [%d, %d) is empty", ErrInvalidConfig, s.Low, s.High)
	case len(s.Curve) != s.Subjects:
		return fmt.Errorf("%w: curve has %d entries for %d subjects", ErrInvalidConfig, len(s.Curve), s.Subjects)
	case s.Decimals < 0:
		return fmt.Errorf("%w: scores decimals must be >= 0", ErrInvalidConfig)
	}

	tc := c.Temperature
	switch {
	case len(tc.Celsius) == 0:
		return fmt.Errorf("%w: temperature celsius list is empty", ErrInvalidConfig)
	case len(tc.Scores) == 0:
		return fmt.Errorf("%w: temperature scores list is empty", ErrInvalidConfig)
	case tc.SumUpTo <= 0:
		return fmt.Errorf("%w: sum_upto must be positive", ErrInvalidConfig)
	case tc.Decimals < 0:
		return fmt.Errorf("%w: temperature decimals must be >= 0", ErrInvalidConfig)
	}

	return nil
}
