// SPDX-License-Identifier: MIT

// Package config loads sweep settings from YAML and validates them.
//
// Values missing from a file keep their defaults; CLI flags are applied on top
// by the caller and the result is re-validated.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/matpar/bench"
	"github.com/katalvlaran/matpar/executor"
	"github.com/katalvlaran/matpar/matrix"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the on-disk sweep description.
type Config struct {
	Size          int       `yaml:"size" validate:"gte=1"`
	Workers       []int     `yaml:"workers" validate:"required,min=1,dive,gte=1"`
	Backends      []string  `yaml:"backends" validate:"required,min=1,dive,oneof=process thread pool multiprocessing threading executor"`
	Seed          *int64    `yaml:"seed"`
	Fractions     []float64 `yaml:"fractions" validate:"dive,gte=0,lte=1"`
	Kernel        string    `yaml:"kernel" validate:"oneof=blas naive"`
	Verify        bool      `yaml:"verify"`
	Tolerance     float64   `yaml:"tolerance" validate:"gt=0,lt=1"`
	ExecutionLock bool      `yaml:"execution_lock"`
	LogLevel      string    `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile   string    `yaml:"metrics_file,omitempty"`
}

// DefaultSeed is the seed used unless the config disables seeding.
const DefaultSeed int64 = 42

// Default returns the settings used when no file is given: a 500×500
// seeded sweep over 1, 2 and 4 workers on every backend.
func Default() Config {
	seed := DefaultSeed
	return Config{
		Size:          500,
		Workers:       []int{1, 2, 4},
		Backends:      []string{"process", "thread", "pool"},
		Seed:          &seed,
		Fractions:     []float64{0.6, 0.9},
		Kernel:        string(matrix.KernelBLAS),
		Verify:        true,
		Tolerance:     bench.DefaultTolerance,
		ExecutionLock: true,
		LogLevel:      "info",
	}
}

// Parse overlays YAML data on Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Sweep converts c into a bench.Config.
func (c Config) Sweep() (bench.Config, error) {
	if err := c.Validate(); err != nil {
		return bench.Config{}, err
	}
	kinds := make([]executor.Kind, 0, len(c.Backends))
	for _, name := range c.Backends {
		k, err := executor.ParseKind(name)
		if err != nil {
			return bench.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		kinds = append(kinds, k)
	}
	sc := bench.Config{
		Size:      c.Size,
		Workers:   append([]int(nil), c.Workers...),
		Backends:  kinds,
		Fractions: append([]float64(nil), c.Fractions...),
		Verify:    c.Verify,
		Tolerance: c.Tolerance,
	}
	if c.Seed != nil {
		sc.Seed, sc.Seeded = *c.Seed, true
	}

	return sc, nil
}

// ExecutorOptions returns the executor options implied by c.
func (c Config) ExecutorOptions() []executor.Option {
	opts := []executor.Option{executor.WithKernel(matrix.KernelName(c.Kernel))}
	if !c.ExecutionLock {
		opts = append(opts, executor.WithoutExecutionLock())
	}

	return opts
}
