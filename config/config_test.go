package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Project.Paths) != 1 || cfg.Project.Paths[0] != "." {
		t.Errorf("expected default project paths [.], got %v", cfg.Project.Paths)
	}
	if cfg.Check.FailFast {
		t.Error("expected fail-fast disabled by default")
	}
	if cfg.Check.Profile != "OWL 2" {
		t.Errorf("expected default profile OWL 2, got %s", cfg.Check.Profile)
	}
	if cfg.Watch.GetDebounce() != 100*time.Millisecond {
		t.Errorf("expected default debounce 100ms, got %v", cfg.Watch.GetDebounce())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing project paths",
			modify:  func(c *Config) { c.Project.Paths = nil },
			wantErr: true,
		},
		{
			name:    "missing profile",
			modify:  func(c *Config) { c.Check.Profile = "" },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "-1s" },
			wantErr: true,
		},
		{
			name:    "malformed debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "soon" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWatchConfigGetDebounce(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		expect time.Duration
	}{
		{name: "valid duration", value: "250ms", expect: 250 * time.Millisecond},
		{name: "empty string uses default", value: "", expect: DefaultDebounce},
		{name: "invalid duration uses default", value: "soon", expect: DefaultDebounce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WatchConfig{Debounce: tt.value}
			if got := w.GetDebounce(); got != tt.expect {
				t.Errorf("GetDebounce() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Project: ProjectConfig{Paths: []string{"ontologies/**"}},
		Check:   CheckConfig{FailFast: true},
		Watch:   WatchConfig{Debounce: "1s"},
	})

	if len(base.Project.Paths) != 1 || base.Project.Paths[0] != "ontologies/**" {
		t.Errorf("expected merged paths, got %v", base.Project.Paths)
	}
	if !base.Check.FailFast {
		t.Error("expected fail-fast enabled after merge")
	}
	if base.Check.Profile != "OWL 2" {
		t.Errorf("empty profile must not override the default, got %s", base.Check.Profile)
	}
	if base.Watch.GetDebounce() != time.Second {
		t.Errorf("expected merged debounce 1s, got %v", base.Watch.GetDebounce())
	}
}

func TestConfigMergeNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(nil)
	if err := cfg.Validate(); err != nil {
		t.Errorf("merging nil must keep a valid config: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphol.yaml")
	content := `project:
  paths:
    - "ontologies/*.graphol"
check:
  fail_fast: true
  profile: "OWL 2 QL"
watch:
  debounce: 250ms
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if len(cfg.Project.Paths) != 1 || cfg.Project.Paths[0] != "ontologies/*.graphol" {
		t.Errorf("unexpected paths: %v", cfg.Project.Paths)
	}
	if !cfg.Check.FailFast {
		t.Error("expected fail-fast enabled")
	}
	if cfg.Check.Profile != "OWL 2 QL" {
		t.Errorf("unexpected profile: %s", cfg.Check.Profile)
	}
	if cfg.Watch.GetDebounce() != 250*time.Millisecond {
		t.Errorf("unexpected debounce: %v", cfg.Watch.GetDebounce())
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("project: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "graphol.yaml")
	cfg := DefaultConfig()
	cfg.Check.Profile = "OWL 2 RL"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Check.Profile != "OWL 2 RL" {
		t.Errorf("expected round-tripped profile, got %s", loaded.Check.Profile)
	}
}
