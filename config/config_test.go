package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `[server]
listen = 0.0.0.0:13000
cors = true
auth = true

[frame]
fps = 120
speed = 1.5
sensitivity = 0.5
bounds = 400

[sessions]
max = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Listen != "0.0.0.0:13000" {
		t.Errorf("listen = %q", cfg.Server.Listen)
	}
	if !cfg.Server.CORS || !cfg.Server.Auth {
		t.Errorf("cors/auth = %v/%v, want true/true", cfg.Server.CORS, cfg.Server.Auth)
	}
	if cfg.Frame.FPS != 120 {
		t.Errorf("fps = %d, want 120", cfg.Frame.FPS)
	}
	if cfg.Frame.Speed != 1.5 || cfg.Frame.Sensitivity != 0.5 || cfg.Frame.Bounds != 400 {
		t.Errorf("frame = %+v", cfg.Frame)
	}
	if cfg.Sessions.Max != 4 {
		t.Errorf("max = %d, want 4", cfg.Sessions.Max)
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, "[frame]\nfps = 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Frame.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Frame.FPS)
	}
	if cfg.Server.Listen != DefaultListen || cfg.Sessions.Max != DefaultMaxSessions {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-numeric fps", "[frame]\nfps = fast\n"},
		{"zero fps", "[frame]\nfps = 0\n"},
		{"negative bounds", "[frame]\nbounds = -1\n"},
		{"bad bool", "[server]\ncors = maybe\n"},
		{"zero sessions", "[sessions]\nmax = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load() expected error for %q", tt.content)
			}
		})
	}
}
