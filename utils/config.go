package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Modes
const (
	ModeLife     = "life"
	ModePolygons = "polygons"
)

// Outputs
const (
	OutputGIF  = "gif"
	OutputPNG  = "png"
	OutputTerm = "term"
)

// DefaultConfigFile is read when present; missing it is not an error
const DefaultConfigFile = "config.json"

// Config holds the configuration for a run
type Config struct {
	Mode              string        `json:"mode"`
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	InitialPopulation int           `json:"initial_population"`
	Pattern           string        `json:"pattern"`
	Generations       int           `json:"generations"`
	Seed              int64         `json:"seed"`
	Workers           int           `json:"workers"`
	Connectivity      int           `json:"connectivity"`
	Output            string        `json:"output"`
	OutFile           string        `json:"out_file"`
	FrameDir          string        `json:"frame_dir"`
	FPS               int           `json:"fps"`
	Scale             int           `json:"scale"`
	Caption           bool          `json:"caption"`
	FrameRate         time.Duration `json:"frame_rate"`
}

// DefaultConfig returns sensible defaults.
// OutFile, FPS and Scale are left empty so ApplyModeDefaults can pick them per mode.
func DefaultConfig() Config {
	return Config{
		Mode:              ModeLife,
		Width:             100, // 2 * height for horizontal layout
		Height:            50,
		InitialPopulation: 1000,
		Generations:       100,
		Seed:              42,
		Workers:           0, // runtime.NumCPU()
		Connectivity:      8,
		Output:            OutputGIF,
		FrameDir:          "frames",
		FrameRate:         100 * time.Millisecond,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "animation to produce: life or polygons")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.InitialPopulation, "population", c.InitialPopulation, "number of random live cells to place")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named layout (glider, blinker, showcase) instead of random cells")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations (or polygon frames) to render")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for initial placement")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently, 0 for one per CPU")
	fs.IntVar(&c.Connectivity, "connectivity", c.Connectivity, "cluster connectivity: 4 or 8")
	fs.StringVar(&c.Output, "output", c.Output, "output: gif, png or term")
	fs.StringVar(&c.OutFile, "out", c.OutFile, "GIF file to write")
	fs.StringVar(&c.FrameDir, "frames", c.FrameDir, "directory for PNG frames")
	fs.IntVar(&c.FPS, "fps", c.FPS, "GIF frames per second, 0 for the mode default")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell, 0 for the mode default")
	fs.BoolVar(&c.Caption, "caption", c.Caption, "print the frame number on each frame")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between terminal frames")
}

// ApplyModeDefaults fills OutFile, FPS and Scale when unset
func (c *Config) ApplyModeDefaults() {
	switch c.Mode {
	case ModePolygons:
		if c.OutFile == "" {
			c.OutFile = "psychedelic_animation.gif"
		}
		if c.FPS <= 0 {
			c.FPS = 20
		}
		if c.Scale <= 0 {
			c.Scale = 1
		}
	default:
		if c.OutFile == "" {
			c.OutFile = "game_of_life.gif"
		}
		if c.FPS <= 0 {
			c.FPS = 10
		}
		if c.Scale <= 0 {
			c.Scale = 8
		}
	}
}

// Validate rejects configurations no run can satisfy
func (c Config) Validate() error {
	if c.Mode != ModeLife && c.Mode != ModePolygons {
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	if c.Output != OutputGIF && c.Output != OutputPNG && c.Output != OutputTerm {
		return errors.Errorf("[Validate] unknown output %q", c.Output)
	}
	if c.Mode == ModePolygons && c.Output == OutputTerm {
		return errors.New("[Validate] polygons cannot be shown in the terminal")
	}
	if c.Mode == ModeLife {
		if c.Width <= 0 || c.Height <= 0 {
			return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
		}
		if c.InitialPopulation < 0 {
			return errors.Errorf("[Validate] initial population must not be negative, got %d", c.InitialPopulation)
		}
		if c.Connectivity != 4 && c.Connectivity != 8 {
			return errors.Errorf("[Validate] connectivity must be 4 or 8, got %d", c.Connectivity)
		}
	}
	if c.Generations <= 0 {
		return errors.Errorf("[Validate] generations must be positive, got %d", c.Generations)
	}
	return nil
}

// ResolveConfig builds the run configuration from defaults, then the JSON file
// named by -config (config.json when present), then explicitly set flags.
func ResolveConfig(name string, args []string) (Config, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", DefaultConfigFile, "JSON configuration file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ResolveConfig] failed to parse flags")
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	fileConfig, err := LoadConfig(*configPath)
	switch {
	case err == nil:
		// flags override the file
		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		fileConfig.Bind(overrides)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overrides.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return config, errors.Wrap(setErr, "[ResolveConfig] failed to apply flag override")
		}
		config = fileConfig
	case explicit || !errors.Is(err, os.ErrNotExist):
		return config, err
	}

	config.ApplyModeDefaults()
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}
