package config

import (
	"compot/device"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFPS = 60

// Config is the merged result of the command line and the optional theme file.
type Config struct {
	Theme device.Theme `yaml:"theme"`
	FPS   int          `yaml:"fps"`

	Path  string `yaml:"-"`
	Log   string `yaml:"-"`
	Once  bool   `yaml:"-"`
	Dry   bool   `yaml:"-"`
	Width int    `yaml:"-"`
}

var Default = Config{
	Theme: device.DefaultTheme,
	FPS:   DefaultFPS,
	Width: 80,
}

// Parse reads the command line. A file named by -config overrides the
// defaults, and -fps overrides the file.
func Parse(name string, args []string) (Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	path := flags.String("config", "", "theme file (yaml)")
	fps := flags.Int("fps", 0, "target frames per second (default 60)")
	logPath := flags.String("log", "", "write the log to this file")
	once := flags.Bool("once", false, "render a single frame to stdout and exit")
	dry := flags.Bool("dry", false, "log the surface operations of a single frame and exit")
	width := flags.Int("width", Default.Width, "frame width in -once mode")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default
	if *path != "" {
		var err error
		cfg, err = Load(*path)
		if err != nil {
			return Config{}, err
		}
	}
	if *fps != 0 {
		cfg.FPS = *fps
	}
	cfg.Path = *path
	cfg.Log = *logPath
	cfg.Once = *once
	cfg.Dry = *dry
	cfg.Width = *width
	return cfg, cfg.Validate()
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a yaml document. Missing fields keep their defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Config{}
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg.Theme = cfg.Theme.Merge(Default.Theme)
	if cfg.FPS == 0 {
		cfg.FPS = Default.FPS
	}
	cfg.Width = Default.Width
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.FPS < 1 {
		return fmt.Errorf("config: fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Width < 1 {
		return fmt.Errorf("config: width must be positive, got %d", cfg.Width)
	}
	return nil
}
