package shapes

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const DefaultModelSource = "https://raw.githubusercontent.com/mouniesa/OpenGL/master/Binaries/teapot.obj"

var ErrUnknownConfigFormat = errors.New("unknown config format")

type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`

	// ModelSource is the URL or file path of the externally authored model.
	ModelSource  string `toml:"model_source" yaml:"model_source"`
	ShowProgress bool   `toml:"show_progress" yaml:"show_progress"`

	StarCount  int     `toml:"star_count" yaml:"star_count"`
	StarExtent float32 `toml:"star_extent" yaml:"star_extent"`
	Seed       int64   `toml:"seed" yaml:"seed"`

	// Projection, fov in degrees.
	FOV  float32 `toml:"fov" yaml:"fov"`
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`

	// Spacing between objects on the layout grid. Zero draws every object at the origin.
	Spacing float32 `toml:"spacing" yaml:"spacing"`

	// Pointer smoothing; a zero frequency disables it.
	PointerFrequency float64 `toml:"pointer_frequency" yaml:"pointer_frequency"`
	PointerDamping   float64 `toml:"pointer_damping" yaml:"pointer_damping"`
	FPS              int     `toml:"fps" yaml:"fps"`

	Debug bool `toml:"debug" yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Shapes",
		},
		ModelSource:      DefaultModelSource,
		ShowProgress:     true,
		StarCount:        1000,
		StarExtent:       10,
		Seed:             1,
		FOV:              45,
		Near:             0.1,
		Far:              100,
		Spacing:          3,
		PointerFrequency: 0,
		PointerDamping:   1,
		FPS:              60,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.ModelSource == "":
		return errors.New("model source is empty")
	case c.StarCount < 0:
		return fmt.Errorf("star count must not be negative, got %d", c.StarCount)
	case c.StarExtent <= 0:
		return fmt.Errorf("star extent must be positive, got %v", c.StarExtent)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("fov must be in (0, 180), got %v", c.FOV)
	case c.Near <= 0 || c.Far <= c.Near:
		return fmt.Errorf("clip planes must satisfy 0 < near < far, got %v, %v", c.Near, c.Far)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// LoadConfig reads a .toml, .yaml or .yml file over the defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the defaults
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}
	return cfg, nil
}

// ParseFlags builds the effective config: defaults, then the file named by
// -config, then every flag given explicitly on the command line.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var path string
	fs.StringVar(&path, "config", "", "Path to a .toml or .yaml config file")

	fromFlags := DefaultConfig()
	fs.IntVar(&fromFlags.Window.Width, "width", fromFlags.Window.Width, "Window width")
	fs.IntVar(&fromFlags.Window.Height, "height", fromFlags.Window.Height, "Window height")
	fs.StringVar(&fromFlags.Window.Title, "title", fromFlags.Window.Title, "Window title")
	fs.StringVar(&fromFlags.ModelSource, "model", fromFlags.ModelSource, "URL or path of the external model (.obj, .glb, .gltf)")
	fs.BoolVar(&fromFlags.ShowProgress, "progress", fromFlags.ShowProgress, "Show model download progress")
	fs.IntVar(&fromFlags.StarCount, "stars", fromFlags.StarCount, "Number of starfield points")
	fs.Int64Var(&fromFlags.Seed, "seed", fromFlags.Seed, "Starfield random seed")
	fs.Float64Var(&fromFlags.PointerFrequency, "pointer-spring", fromFlags.PointerFrequency, "Pointer smoothing frequency (0 disables)")
	fs.BoolVar(&fromFlags.Debug, "debug", fromFlags.Debug, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = fromFlags.Window.Width
		case "height":
			cfg.Window.Height = fromFlags.Window.Height
		case "title":
			cfg.Window.Title = fromFlags.Window.Title
		case "model":
			cfg.ModelSource = fromFlags.ModelSource
		case "progress":
			cfg.ShowProgress = fromFlags.ShowProgress
		case "stars":
			cfg.StarCount = fromFlags.StarCount
		case "seed":
			cfg.Seed = fromFlags.Seed
		case "pointer-spring":
			cfg.PointerFrequency = fromFlags.PointerFrequency
		case "debug":
			cfg.Debug = fromFlags.Debug
		}
	})

	return cfg, cfg.Validate()
}
