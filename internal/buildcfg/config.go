package buildcfg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ManifestName is the project manifest file looked up by the CLI.
const ManifestName = "tungsten.toml"

// MaxOptLevel bounds the -O flag.
const MaxOptLevel = 3

var (
	// ErrInvalidOptLevel is returned for opt levels above MaxOptLevel.
	ErrInvalidOptLevel = errors.New("invalid optimization level")
	// ErrInvalidTarget is returned for a target that is not a triple.
	ErrInvalidTarget = errors.New("invalid target triple")
)

// Config is the build configuration for one compiler invocation. The lexer
// never sees it; only the driver does.
type Config struct {
	Name     string
	Target   Triple
	OptLevel uint8
	OutDir   string
	// Root is the directory holding the manifest, empty when none was found.
	Root string
}

// Default returns the configuration used without a manifest.
func Default() Config {
	return Config{
		Target: HostTriple(),
		OutDir: "target",
	}
}

// SetOptLevel validates and stores the optimization level.
func (c *Config) SetOptLevel(level uint8) error {
	if level > MaxOptLevel {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidOptLevel, level, MaxOptLevel)
	}
	c.OptLevel = level
	return nil
}

// SetTarget parses and stores a target triple; an empty string keeps the host.
func (c *Config) SetTarget(s string) error {
	if strings.TrimSpace(s) == "" {
		c.Target = HostTriple()
		return nil
	}
	t, ok := ParseTriple(s)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	c.Target = t
	return nil
}

// ArtifactDir resolves OutDir against Root.
func (c *Config) ArtifactDir() string {
	if c.Root == "" || filepath.IsAbs(c.OutDir) {
		return c.OutDir
	}
	return filepath.Join(c.Root, c.OutDir)
}
