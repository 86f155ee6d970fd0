package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Catalogs) != 2 || cfg.Catalogs[0].Prefix != "r1" || cfg.Catalogs[1].Prefix != "r2" {
		t.Fatalf("unexpected default catalogs: %#v", cfg.Catalogs)
	}
	if cfg.Effects.DefaultLevel != "1" || cfg.Effects.DefaultDuration != "30" {
		t.Fatalf("unexpected effect defaults: %#v", cfg.Effects)
	}
	if !cfg.Output.Clipboard {
		t.Fatal("expected clipboard enabled by default")
	}
}

func TestLoadFromPathReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brewcraft.yaml")
	content := `catalogs:
  - path: data/items.json
    prefix: it
effects:
  language: zh-CN
logging:
  level: debug
output:
  clipboard: false
  indent: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Catalogs) != 1 || cfg.Catalogs[0].Path != "data/items.json" {
		t.Fatalf("unexpected catalogs: %#v", cfg.Catalogs)
	}
	if cfg.Effects.Language != "zh-CN" {
		t.Fatalf("expected zh-CN, got %q", cfg.Effects.Language)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Effects.DefaultDuration != "30" {
		t.Fatalf("expected default duration kept, got %q", cfg.Effects.DefaultDuration)
	}
	if cfg.Output.Clipboard || cfg.Output.Indent != 4 {
		t.Fatalf("unexpected output: %#v", cfg.Output)
	}
}

func TestLoadFromPathRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("catalogs: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvCatalogs, "a.json:x, b.json:y")
	t.Setenv(EnvClipboard, "false")
	t.Setenv(EnvIndent, "2")
	t.Setenv(EnvLogLevel, "off")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Catalogs) != 2 || cfg.Catalogs[1] != (CatalogSource{Path: "b.json", Prefix: "y"}) {
		t.Fatalf("unexpected catalogs: %#v", cfg.Catalogs)
	}
	if cfg.Output.Clipboard {
		t.Fatal("expected clipboard disabled")
	}
	if cfg.Output.Indent != 2 {
		t.Fatalf("expected indent 2, got %d", cfg.Output.Indent)
	}
	if cfg.Logging.Level != "off" {
		t.Fatalf("expected log level off, got %q", cfg.Logging.Level)
	}
}

func TestParseCatalogList(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"items.json:r1", 1, false},
		{"items.json:r1,blocks.json:r2", 2, false},
		{`C:\data\items.json:r1`, 1, false},
		{"", 0, false},
		{"items.json", 0, true},
		{"items.json:", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCatalogList(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d sources, want %d", len(got), tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalogs = append(cfg.Catalogs, CatalogSource{Path: "more.json", Prefix: "r1"})
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected duplicate prefix error")
	}

	cfg = DefaultConfig()
	cfg.Catalogs[0].Prefix = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing prefix error")
	}
}
