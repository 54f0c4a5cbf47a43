package rangetree

import (
	"fmt"
	"log/slog"
	"runtime"
)

// DefaultLeafSize is the brute-force threshold: a node with at most this
// many points is a leaf and is scanned directly.
const DefaultLeafSize = 10

// Config controls how a Tree is built.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// LeafSize is the largest point count a node may have and still be a
	// leaf. Larger values mean shallower trees and longer scans.
	// Must be >= 1. Default: 10.
	LeafSize int

	// Workers bounds the goroutines used to build the associated structures
	// of the outermost tree. 1 builds sequentially; 0 means runtime.NumCPU().
	// The built tree does not depend on this value. Default: 0 (auto).
	Workers int

	// CheckInvariants runs Validate after the build and fails the build if
	// it reports a problem. Costs roughly another build. Default: false.
	CheckInvariants bool

	// Logger receives build diagnostics. nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		LeafSize: DefaultLeafSize,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.LeafSize == 0 {
		cfg.LeafSize = DefaultLeafSize
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.LeafSize < 1 {
		return fmt.Errorf("rangetree: LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("rangetree: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}
