package buildcfg

import (
	"runtime"
	"strings"
)

// Triple is a target description in the form <arch>-<vendor>-<os>-<env>.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
}

func (t Triple) String() string {
	parts := []string{t.Arch, t.Vendor, t.OS}
	if t.Env != "" {
		parts = append(parts, t.Env)
	}
	return strings.Join(parts, "-")
}

var archNames = map[string]string{
	"amd64":    "x86_64",
	"386":      "i686",
	"arm64":    "aarch64",
	"arm":      "arm",
	"riscv64":  "riscv64gc",
	"ppc64le":  "powerpc64le",
	"s390x":    "s390x",
	"loong64":  "loongarch64",
	"wasm":     "wasm32",
	"mips64le": "mips64el",
}

// TripleFor maps Go's GOARCH/GOOS pair onto the naming used by build targets.
func TripleFor(goarch, goos string) Triple {
	t := Triple{Arch: goarch, Vendor: "unknown", OS: goos}
	if a, ok := archNames[goarch]; ok {
		t.Arch = a
	}
	switch goos {
	case "linux":
		t.Env = "gnu"
	case "darwin", "ios":
		t.Vendor = "apple"
		if goos == "darwin" {
			t.OS = "macos"
		}
	case "windows":
		t.Vendor = "pc"
		t.Env = "msvc"
	case "android":
		t.OS = "linux"
		t.Env = "android"
	case "js", "wasip1":
		t.OS = "unknown"
		if goos == "wasip1" {
			t.OS = "wasi"
		}
	}
	return t
}

// HostTriple guesses the triple of the machine running the compiler.
func HostTriple() Triple {
	return TripleFor(runtime.GOARCH, runtime.GOOS)
}

// ParseTriple splits a triple string. Three-part triples have no env.
func ParseTriple(s string) (Triple, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	switch len(parts) {
	case 3:
		return Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2]}, parts[0] != ""
	case 4:
		return Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2], Env: parts[3]}, parts[0] != ""
	}
	return Triple{}, false
}
