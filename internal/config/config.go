// package config loads and watches the demo's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the demo.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Engine    EngineConfig    `yaml:"engine"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
}

// WindowConfig configures the window shell. The terminal platform sizes
// itself from the emulator, so the title is the only tunable.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// EngineConfig configures the engine loops.
type EngineConfig struct {
	// TickRate is the simulation tick rate in ticks per second.
	TickRate float64 `yaml:"tick_rate"`
	// RenderFrameLimit caps the render loop in frames per second; 0 uncaps it.
	RenderFrameLimit float64 `yaml:"render_frame_limit"`
	// Profiling enables periodic frame and memory stats in the log.
	Profiling bool `yaml:"profiling"`
}

// PlayerConfig configures the player character.
type PlayerConfig struct {
	// MoveSpeed is the locomotion speed in world units per second.
	MoveSpeed float32 `yaml:"move_speed"`
}

// AnimationConfig configures clip playback.
type AnimationConfig struct {
	// CrossfadeMillis is the clip-cycle crossfade duration in milliseconds.
	CrossfadeMillis int `yaml:"crossfade_millis"`
}

// CameraConfig configures the follow camera offsets in world units.
type CameraConfig struct {
	BackDistance float32 `yaml:"back_distance"`
	Height       float32 `yaml:"height"`
}

// InputConfig configures the input layer.
type InputConfig struct {
	// HoldExpiryMillis is how long a key's repeat stream may go quiet before
	// it counts as released.
	HoldExpiryMillis int `yaml:"hold_expiry_millis"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - *Config: the default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Fox Demo",
		},
		Engine: EngineConfig{
			TickRate:         60,
			RenderFrameLimit: 0,
			Profiling:        false,
		},
		Player: PlayerConfig{
			MoveSpeed: 5.0,
		},
		Animation: AnimationConfig{
			CrossfadeMillis: 250,
		},
		Camera: CameraConfig{
			BackDistance: 300,
			Height:       200,
		},
		Input: InputConfig{
			HoldExpiryMillis: 150,
		},
	}
}

// Load reads the configuration at path, layered over the defaults. A missing
// file is not an error: the defaults are returned so the demo runs without
// any configuration on disk.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}
