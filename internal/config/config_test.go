package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NAMEDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.LabelPrefix != "Your Data: " {
		t.Errorf("label_prefix = %q, want %q", cfg.UI.LabelPrefix, "Your Data: ")
	}
	if cfg.UI.RequiredMessage != "This is a required field" {
		t.Errorf("required_message = %q", cfg.UI.RequiredMessage)
	}
	if cfg.App.InitialName != "" {
		t.Errorf("initial_name = %q, want empty", cfg.App.InitialName)
	}
	if !cfg.UI.AltScreen {
		t.Error("alt_screen should default to true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[app]\ninitial_name = \"Alice\"\n\n[ui]\nlabel_prefix = \"Name: \"\nalt_screen = false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NAMEDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.InitialName != "Alice" {
		t.Errorf("initial_name = %q, want %q", cfg.App.InitialName, "Alice")
	}
	if cfg.UI.LabelPrefix != "Name: " {
		t.Errorf("label_prefix = %q, want %q", cfg.UI.LabelPrefix, "Name: ")
	}
	if cfg.UI.AltScreen {
		t.Error("alt_screen should be false")
	}
	// untouched keys keep defaults
	if cfg.UI.RequiredMessage != "This is a required field" {
		t.Errorf("required_message = %q", cfg.UI.RequiredMessage)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("NAMEDECK_CONFIG", path)

	in, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	in.UI.LabelPrefix = "Hello: "
	in.App.InitialName = "Bob"
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if out.UI.LabelPrefix != "Hello: " {
		t.Errorf("label_prefix = %q, want %q", out.UI.LabelPrefix, "Hello: ")
	}
	if out.App.InitialName != "Bob" {
		t.Errorf("initial_name = %q, want %q", out.App.InitialName, "Bob")
	}
}
