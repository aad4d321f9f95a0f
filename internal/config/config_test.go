package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Root != "/" {
		t.Errorf("Root = %q, want /", cfg.Root)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.ShellEnv != "SHELL" {
		t.Errorf("ShellEnv = %q, want SHELL", cfg.ShellEnv)
	}
	if cfg.LabelWidth != 20 {
		t.Errorf("LabelWidth = %d, want 20", cfg.LabelWidth)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if cfg.DatabasePath != "bareinfo.db" {
		t.Errorf("DatabasePath = %q, want bareinfo.db", cfg.DatabasePath)
	}
	for category, want := range DefaultStyles {
		if got := cfg.Style(category); got != want {
			t.Errorf("Style(%q) = %q, want %q", category, got, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bareinfo.yaml")
	content := "root: /mnt/target\nlabel_width: 24\ncolor: never\nstyles:\n  cpu: \"#ff8800\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Root != "/mnt/target" {
		t.Errorf("Root = %q, want /mnt/target", cfg.Root)
	}
	if cfg.LabelWidth != 24 {
		t.Errorf("LabelWidth = %d, want 24", cfg.LabelWidth)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if got := cfg.Style("cpu"); got != "#ff8800" {
		t.Errorf("Style(cpu) = %q, want #ff8800", got)
	}
	if got := cfg.Style("firmware"); got != "red" {
		t.Errorf("Style(firmware) = %q, want red", got)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BAREINFO_SHELL_ENV", "LOGIN_SHELL")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShellEnv != "LOGIN_SHELL" {
		t.Errorf("ShellEnv = %q, want LOGIN_SHELL", cfg.ShellEnv)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Color: "sometimes"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted color mode \"sometimes\"")
	}

	cfg = &Config{Color: ColorAlways, LabelWidth: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted negative label width")
	}

	cfg = &Config{Color: ColorNever, LabelWidth: 20}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
