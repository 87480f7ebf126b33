package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return cfg, fs
}

func TestBindOverrides(t *testing.T) {
	cfg, _ := parse(t, "-sim", "aged", "-set", "w=80", "-set", "density=0.3", "-seed", "9")
	if cfg.Sim != "aged" {
		t.Fatalf("expected sim aged, got %q", cfg.Sim)
	}
	got := cfg.SimOverrides()
	if got["w"] != "80" || got["density"] != "0.3" || got["seed"] != "9" {
		t.Fatalf("unexpected overrides %v", got)
	}
}

func TestUnsetSeedKeepsPresetSeed(t *testing.T) {
	cfg, _ := parse(t)
	if _, ok := cfg.SimOverrides()["seed"]; ok {
		t.Fatal("an unset seed should not override the preset")
	}
}

func TestSeedZeroCanBeSelected(t *testing.T) {
	cfg, _ := parse(t, "-seed", "0")
	if got, ok := cfg.SimOverrides()["seed"]; !ok || got != "0" {
		t.Fatalf("explicit -seed 0 should override the preset, got %v", cfg.SimOverrides())
	}

	path := filepath.Join(t.TempDir(), "zero.json")
	if err := os.WriteFile(path, []byte(`{"seed": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, fs := parse(t, "-config", path)
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}
	if got := cfg.SimOverrides()["seed"]; got != "0" {
		t.Fatalf("file seed 0 should override the preset, got %q", got)
	}
}

func TestSeedFlagRejectsNonInteger(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "abc"}); err == nil {
		t.Fatal("expected a non-integer seed to fail")
	}
}

func TestBadOverrideRejected(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected a malformed -set to fail")
	}
}

func TestResolveLayersFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	data := `{"sim": "lavender", "tps": 30, "seed": 5, "hud": 0, "overrides": {"w": "64", "h": "48"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, fs := parse(t, "-config", path, "-tps", "90", "-set", "w=32")
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "lavender" || cfg.Seed != 5 || cfg.HUD != 0 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TPS != 90 {
		t.Fatalf("explicit flag should win over the file, got tps %d", cfg.TPS)
	}
	if cfg.Overrides["w"] != "32" || cfg.Overrides["h"] != "48" {
		t.Fatalf("unexpected merged overrides %v", cfg.Overrides)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
