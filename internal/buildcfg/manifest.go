package buildcfg

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Build struct {
		Target   string `toml:"target,omitempty"`
		OptLevel uint8  `toml:"opt-level"`
		OutDir   string `toml:"out-dir,omitempty"`
	} `toml:"build"`
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Load parses a tungsten.toml. Unset [build] keys keep their defaults.
func Load(path string) (Config, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := Default()
	cfg.Name = strings.TrimSpace(m.Package.Name)
	cfg.Root = filepath.Dir(path)
	if err := cfg.SetTarget(m.Build.Target); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.SetOptLevel(m.Build.OptLevel); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if meta.IsDefined("build", "out-dir") {
		cfg.OutDir = m.Build.OutDir
	}
	return cfg, nil
}

// Encode renders cfg as manifest text. The host target is not written out.
func Encode(cfg Config) ([]byte, error) {
	var m manifest
	m.Package.Name = cfg.Name
	if cfg.Target != HostTriple() {
		m.Build.Target = cfg.Target.String()
	}
	m.Build.OptLevel = cfg.OptLevel
	m.Build.OutDir = cfg.OutDir

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path, refusing to overwrite an existing file.
func Save(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G302 G304 -- manifest is a regular project file
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Find walks up from startDir looking for tungsten.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest manifest above startDir, or returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
