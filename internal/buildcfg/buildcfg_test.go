package buildcfg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestTripleFor(t *testing.T) {
	tests := []struct {
		arch, os string
		want     string
	}{
		{"amd64", "linux", "x86_64-unknown-linux-gnu"},
		{"arm64", "darwin", "aarch64-apple-macos"},
		{"amd64", "windows", "x86_64-pc-windows-msvc"},
		{"386", "freebsd", "i686-unknown-freebsd"},
		{"arm64", "android", "aarch64-unknown-linux-android"},
		{"wasm", "wasip1", "wasm32-unknown-wasi"},
	}
	for _, tt := range tests {
		if got := TripleFor(tt.arch, tt.os).String(); got != tt.want {
			t.Errorf("TripleFor(%s, %s) = %q, want %q", tt.arch, tt.os, got, tt.want)
		}
	}
}

func TestParseTriple(t *testing.T) {
	tr, ok := ParseTriple("x86_64-unknown-linux-gnu")
	if !ok || tr != (Triple{Arch: "x86_64", Vendor: "unknown", OS: "linux", Env: "gnu"}) {
		t.Fatalf("got %+v, %v", tr, ok)
	}
	if tr, ok := ParseTriple("aarch64-apple-macos"); !ok || tr.Env != "" {
		t.Fatalf("three-part triple: %+v, %v", tr, ok)
	}
	for _, bad := range []string{"", "x86_64", "a-b", "-b-c", "a-b-c-d-e"} {
		if _, ok := ParseTriple(bad); ok {
			t.Errorf("ParseTriple(%q) accepted", bad)
		}
	}
}

func TestHostTripleIsParsable(t *testing.T) {
	host := HostTriple()
	back, ok := ParseTriple(host.String())
	if !ok || back != host {
		t.Fatalf("host triple %q does not round-trip: %+v", host, back)
	}
}

func TestConfigSetters(t *testing.T) {
	cfg := Default()
	if cfg.OutDir != "target" || cfg.Target != HostTriple() {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.SetOptLevel(3); err != nil || cfg.OptLevel != 3 {
		t.Fatalf("SetOptLevel(3): %v", err)
	}
	if err := cfg.SetOptLevel(4); !errors.Is(err, ErrInvalidOptLevel) || cfg.OptLevel != 3 {
		t.Fatalf("SetOptLevel(4) = %v, level %d", err, cfg.OptLevel)
	}
	if err := cfg.SetTarget("nonsense"); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("SetTarget(nonsense) = %v", err)
	}
	cfg.Root = "/proj"
	if got := cfg.ArtifactDir(); got != filepath.Join("/proj", "target") {
		t.Fatalf("ArtifactDir = %q", got)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	writeFile(t, path, `[package]
name = " demo "

[build]
target = "riscv64gc-unknown-linux-gnu"
opt-level = 2
out-dir = "out"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" || cfg.OptLevel != 2 || cfg.OutDir != "out" || cfg.Root != dir {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Target.String() != "riscv64gc-unknown-linux-gnu" {
		t.Fatalf("target = %s", cfg.Target)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no package", "[build]\nopt-level = 1\n", "missing [package]"},
		{"bad opt", "[package]\nname = \"x\"\n[build]\nopt-level = 9\n", "invalid optimization level"},
		{"bad target", "[package]\nname = \"x\"\n[build]\ntarget = \"x86\"\n", "invalid target triple"},
		{"unknown key", "[package]\nname = \"x\"\nversion = \"1\"\n", "unknown key"},
		{"syntax", "[package\n", "failed to parse TOML"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i)), ManifestName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)

	cfg := Default()
	cfg.Name = "hello"
	if err := cfg.SetOptLevel(1); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetTarget("aarch64-apple-macos"); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// повторная запись не должна перетирать манифест
	if err := Save(path, cfg); !errors.Is(err, os.ErrExist) {
		t.Fatalf("second Save = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Root = dir
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestEncodeOmitsHostTarget(t *testing.T) {
	cfg := Default()
	cfg.Name = "p"
	data, err := Encode(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "target =") {
		t.Fatalf("host target written out:\n%s", data)
	}
	if !strings.Contains(string(data), "[package]") || !strings.Contains(string(data), "opt-level = 0") {
		t.Fatalf("unexpected manifest:\n%s", data)
	}
}

func TestFindAndDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"walk\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok || path != filepath.Join(root, ManifestName) {
		t.Fatalf("Find = %q, %v, %v", path, ok, err)
	}
	cfg, err := Discover(nested)
	if err != nil || cfg.Name != "walk" || cfg.OutDir != "target" {
		t.Fatalf("Discover = %+v, %v", cfg, err)
	}
}
