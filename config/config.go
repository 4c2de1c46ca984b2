package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	DefaultListen      = "localhost:12000"
	DefaultFPS         = 60
	DefaultSpeed       = 0.75
	DefaultSensitivity = 1.0
	DefaultMaxSessions = 16
)

// Config holds the settings read from config.ini
type Config struct {
	Server   ServerConfig
	Frame    FrameConfig
	Sessions SessionsConfig
}

type ServerConfig struct {
	Listen string
	CORS   bool
	Auth   bool
}

type FrameConfig struct {
	FPS         int
	Speed       float32
	Sensitivity float32
	Bounds      float32
}

type SessionsConfig struct {
	Max int
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: DefaultListen,
		},
		Frame: FrameConfig{
			FPS:         DefaultFPS,
			Speed:       DefaultSpeed,
			Sensitivity: DefaultSensitivity,
		},
		Sessions: SessionsConfig{
			Max: DefaultMaxSessions,
		},
	}
}

// DefaultPath returns $HOME/.touchdrag/config.ini
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".touchdrag", "config.ini"), nil
}

// Load reads the ini file at path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	server := file.Section("server")
	cfg.Server.Listen = server.Key("listen").MustString(cfg.Server.Listen)
	if cfg.Server.CORS, err = boolKey(server, "cors", cfg.Server.CORS); err != nil {
		return nil, err
	}
	if cfg.Server.Auth, err = boolKey(server, "auth", cfg.Server.Auth); err != nil {
		return nil, err
	}

	frame := file.Section("frame")
	if cfg.Frame.FPS, err = intKey(frame, "fps", cfg.Frame.FPS); err != nil {
		return nil, err
	}
	if cfg.Frame.Speed, err = floatKey(frame, "speed", cfg.Frame.Speed); err != nil {
		return nil, err
	}
	if cfg.Frame.Sensitivity, err = floatKey(frame, "sensitivity", cfg.Frame.Sensitivity); err != nil {
		return nil, err
	}
	if cfg.Frame.Bounds, err = floatKey(frame, "bounds", cfg.Frame.Bounds); err != nil {
		return nil, err
	}

	if cfg.Sessions.Max, err = intKey(file.Section("sessions"), "max", cfg.Sessions.Max); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the frame loop and session registry cannot run with
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("[server] listen must not be empty")
	}
	if c.Frame.FPS <= 0 {
		return fmt.Errorf("[frame] fps must be positive, got %d", c.Frame.FPS)
	}
	if c.Frame.Bounds < 0 {
		return fmt.Errorf("[frame] bounds must not be negative, got %v", c.Frame.Bounds)
	}
	if c.Sessions.Max <= 0 {
		return fmt.Errorf("[sessions] max must be positive, got %d", c.Sessions.Max)
	}
	return nil
}

func boolKey(section *ini.Section, name string, def bool) (bool, error) {
	if !section.HasKey(name) {
		return def, nil
	}
	v, err := section.Key(name).Bool()
	if err != nil {
		return def, fmt.Errorf("[%s] %s: %w", section.Name(), name, err)
	}
	return v, nil
}

func intKey(section *ini.Section, name string, def int) (int, error) {
	if !section.HasKey(name) {
		return def, nil
	}
	v, err := section.Key(name).Int()
	if err != nil {
		return def, fmt.Errorf("[%s] %s: %w", section.Name(), name, err)
	}
	return v, nil
}

func floatKey(section *ini.Section, name string, def float32) (float32, error) {
	if !section.HasKey(name) {
		return def, nil
	}
	v, err := section.Key(name).Float64()
	if err != nil {
		return def, fmt.Errorf("[%s] %s: %w", section.Name(), name, err)
	}
	return float32(v), nil
}
