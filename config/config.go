package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oliverbestmann/thumbstick/stick"
	. "github.com/quasilyte/gmath"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

// Load reads config/config.<env>.yaml from the project root. Environment
// variables override anything in the file.
func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		// env only
		configPath = ""
	}

	return LoadFile(configPath)
}

// LoadFile reads the given yaml file. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	viperConfig := viper.New()
	setDefaults(viperConfig)

	if path != "" {
		viperConfig.SetConfigFile(path)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.title", "Thumbstick")
	v.SetDefault("window.tps", 60)

	v.SetDefault("stick.center_x", 100.0)
	v.SetDefault("stick.center_y", 100.0)
	v.SetDefault("stick.radius", 50.0)
	v.SetDefault("stick.velocity_scale", stick.DefaultVelocityScale)
	v.SetDefault("stick.recenter_ms", stick.DefaultRecenterDuration.Milliseconds())

	v.SetDefault("ground.seed", 1)
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width")
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height")
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetTPS() int {
	return c.getInt("WINDOW_TPS", "window.tps")
}

func (c *Config) GetStickCenter() Vec {
	return Vec{
		X: c.getFloat("STICK_CENTER_X", "stick.center_x"),
		Y: c.getFloat("STICK_CENTER_Y", "stick.center_y"),
	}
}

func (c *Config) GetStickRadius() float64 {
	return c.getFloat("STICK_RADIUS", "stick.radius")
}

// GetKnobRadius falls back to the stick radius when unset.
func (c *Config) GetKnobRadius() float64 {
	knobRadius := c.getFloat("STICK_KNOB_RADIUS", "stick.knob_radius")
	if knobRadius == 0 {
		knobRadius = c.GetStickRadius()
	}

	return knobRadius
}

func (c *Config) GetVelocityScale() float64 {
	return c.getFloat("STICK_VELOCITY_SCALE", "stick.velocity_scale")
}

func (c *Config) GetRecenterDuration() time.Duration {
	return time.Duration(c.getInt("STICK_RECENTER_MS", "stick.recenter_ms")) * time.Millisecond
}

func (c *Config) GetGroundSeed() int32 {
	return int32(c.getInt("GROUND_SEED", "ground.seed"))
}

func (c *Config) GetDebug() bool {
	return c.config.GetBool("DEBUG") || c.config.GetBool("debug.enabled")
}

func (c *Config) GetProfile() bool {
	return c.config.GetBool("PROFILE") || c.config.GetBool("debug.profile")
}

// Region builds the stick region from the configured geometry.
func (c *Config) Region() (stick.Region, error) {
	region, err := stick.NewRegion(c.GetStickCenter(), c.GetStickRadius())
	if err != nil {
		return stick.Region{}, fmt.Errorf("invalid stick config: %w", err)
	}

	return region, nil
}

// StickOptions builds the controller options, rejecting values that would
// break the stick output.
func (c *Config) StickOptions() ([]stick.Option, error) {
	velocityScale := c.GetVelocityScale()
	if err := stick.CheckVelocityScale(velocityScale); err != nil {
		return nil, fmt.Errorf("invalid stick config: %w", err)
	}

	knobRadius := c.GetKnobRadius()
	if err := stick.CheckKnobRadius(knobRadius); err != nil {
		return nil, fmt.Errorf("invalid stick config: %w", err)
	}

	recenterDuration := c.GetRecenterDuration()
	if err := stick.CheckRecenterDuration(recenterDuration); err != nil {
		return nil, fmt.Errorf("invalid stick config: %w", err)
	}

	opts := []stick.Option{
		stick.WithVelocityScale(velocityScale),
		stick.WithKnobRadius(knobRadius),
		stick.WithRecenterDuration(recenterDuration),
	}

	return opts, nil
}

func (c *Config) getInt(envKey, key string) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(key)
	}

	return value
}

func (c *Config) getFloat(envKey, key string) float64 {
	value := c.config.GetFloat64(envKey)
	if value == 0 {
		value = c.config.GetFloat64(key)
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
