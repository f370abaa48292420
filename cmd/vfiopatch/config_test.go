package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log_level: debug
log_format: json
skip_warning: true
ignore_sanity_check: false
server_address: "0.0.0.0:9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadConfigFile(path)
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log config: %+v", cfg)
	}
	if cfg.SkipWarning == nil || !*cfg.SkipWarning {
		t.Fatalf("skip_warning: %+v", cfg.SkipWarning)
	}
	if cfg.IgnoreSanityCheck == nil || *cfg.IgnoreSanityCheck {
		t.Fatalf("ignore_sanity_check: %+v", cfg.IgnoreSanityCheck)
	}
	if cfg.DisableFooterStrip != nil {
		t.Fatalf("disable_footer_strip should stay unset, got %+v", cfg.DisableFooterStrip)
	}
	if cfg.ServerAddress != "0.0.0.0:9000" {
		t.Fatalf("server_address: %q", cfg.ServerAddress)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	cfg := loadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if cfg := loadConfigFile(path); cfg != (Config{}) {
		t.Fatalf("expected zero config for invalid yaml, got %+v", cfg)
	}
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"I agree to be careful\n", "I agree to be careful"},
		{"I agree to be careful\r\n", "I agree to be careful"},
		{"no newline at end", "no newline at end"},
		{"\n", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := readLine(strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("readLine(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("readLine(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
