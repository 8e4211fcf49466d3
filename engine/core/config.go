package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hubastard/meowcade/engine/colors"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clearColor"` // RGBA
	AssetsDir  string       `yaml:"assetsDir"`
	SaveName   string       `yaml:"saveName"` // app name for persistent progress; empty keeps it in memory
}

func DefaultConfig() Config {
	return Config{
		Title:      "Meowcade",
		Width:      960,
		Height:     640,
		VSync:      true,
		ClearColor: colors.Lavender,
		AssetsDir:  "assets",
		SaveName:   "meowcade",
	}
}

// LoadConfig reads a YAML config. A missing file yields DefaultConfig;
// fields left out of the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[config] %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ClearColor == (colors.Color{}) {
		c.ClearColor = def.ClearColor
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
}
