package panes

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Config is the TOML description of a position and its defaults:
//
//	[viewport]
//	width = 1280
//	height = 720
//
//	[position]
//	ortho = false
//	initial = "centered"
//	[position.data]
//	left = "+=10%"
//	width = 320
//	height = "auto"
//
//	[bounds]
//	mode = "transform"
//	constrain = true
//
//	[tween]
//	duration = 0.4
//	ease = "quadInOut"
//	strategy = "cancel"
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Position PositionConfig `toml:"position"`
	Bounds   BoundsConfig   `toml:"bounds"`
	Tween    TweenConfig    `toml:"tween"`
}

// ViewportConfig sets the engine viewport. Zero keeps DefaultViewport.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PositionConfig maps onto Options.
type PositionConfig struct {
	Ortho              bool   `toml:"ortho"`
	CalculateTransform bool   `toml:"calculate_transform"`
	Initial            string `toml:"initial"` // "" or "centered"
	// Data maps property names to numbers or strings.
	Data map[string]any `toml:"data"`
}

// BoundsConfig selects the bounds validator.
type BoundsConfig struct {
	Mode      string   `toml:"mode"` // "transform" (default), "basic" or "none"
	Constrain bool     `toml:"constrain"`
	Width     float64  `toml:"width"`
	Height    float64  `toml:"height"`
	Weight    *float64 `toml:"weight"`
}

// TweenConfig maps onto TweenOptions.
type TweenConfig struct {
	Delay           float64 `toml:"delay"`
	Duration        float64 `toml:"duration"`
	Ease            string  `toml:"ease"`
	Strategy        string  `toml:"strategy"`
	TransformOrigin string  `toml:"transform_origin"`
}

// ParseConfig decodes a TOML config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Bounds.Mode {
	case "", "transform", "basic", "none":
	default:
		return fmt.Errorf("config: unknown bounds mode %q", c.Bounds.Mode)
	}
	switch c.Position.Initial {
	case "", "centered":
	default:
		return fmt.Errorf("config: unknown initial placement %q", c.Position.Initial)
	}
	if _, err := c.Position.Update(); err != nil {
		return err
	}
	if _, err := c.Tween.Options().resolve("config.tween"); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Update converts the data table into an Update.
func (pc PositionConfig) Update() (Update, error) {
	return decodeUpdate(pc.Data)
}

// decodeUpdate converts a TOML table of property names to values.
func decodeUpdate(raw map[string]any) (Update, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	u := make(Update, len(raw))
	for _, name := range names {
		k, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown position key %q", name)
		}
		var v Value
		if err := v.UnmarshalTOML(raw[name]); err != nil {
			return nil, fmt.Errorf("config: key %q: %w", name, err)
		}
		u[k] = v
	}
	return u, nil
}

// Size returns the configured viewport, or DefaultViewport.
func (vc ViewportConfig) Size() Size {
	if vc.Width > 0 && vc.Height > 0 {
		return Size{Width: vc.Width, Height: vc.Height}
	}
	return DefaultViewport
}

// Options builds position options: the bounds validator, the initial
// placement helper and the initial data.
func (c *Config) Options() (Options, error) {
	data, err := c.Position.Update()
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Ortho:              c.Position.Ortho,
		CalculateTransform: c.Position.CalculateTransform,
		Data:               data,
	}
	sys := SystemOptions{
		Constrain: c.Bounds.Constrain,
		Weight:    c.Bounds.Weight,
	}
	if c.Bounds.Width > 0 {
		sys.Width = Num(c.Bounds.Width)
	}
	if c.Bounds.Height > 0 {
		sys.Height = Num(c.Bounds.Height)
	}
	switch c.Bounds.Mode {
	case "", "transform":
		opts.Validators = append(opts.Validators, NewTransformBounds(sys))
	case "basic":
		opts.Validators = append(opts.Validators, NewBasicBounds(sys))
	}
	if c.Position.Initial == "centered" {
		opts.Initial = NewCentered(sys)
	}
	return opts, nil
}

// Options returns the tween defaults.
func (tc TweenConfig) Options() TweenOptions {
	return TweenOptions{
		Delay:           tc.Delay,
		Duration:        tc.Duration,
		EaseName:        tc.Ease,
		Strategy:        Strategy(tc.Strategy),
		TransformOrigin: Origin(tc.TransformOrigin),
	}
}

// Apply configures e with the viewport.
func (c *Config) Apply(e *Engine) {
	e.SetViewport(c.Viewport.Size())
}
