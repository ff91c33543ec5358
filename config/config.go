package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/der-antikeks/nightcity/city"
)

const (
	FileName  = "nightcity"
	EnvPrefix = "NIGHTCITY"
)

type Config struct {
	// zero seeds the city from the clock
	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`

	Window WindowConfig `mapstructure:"window"`
	City   city.Config  `mapstructure:"city"`
	Stats  StatsConfig  `mapstructure:"stats"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type StatsConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	// write otel metrics to stdout every interval
	Export bool `mapstructure:"export"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Futuristic City at Night")
	v.SetDefault("window.vsync", true)

	v.SetDefault("city.buildings", city.DefaultBuildings)
	v.SetDefault("city.vehicles", city.DefaultVehicles)
	v.SetDefault("city.billboards", city.DefaultBillboards)

	v.SetDefault("stats.interval", "1s")
	v.SetDefault("stats.export", false)
}

// Load reads nightcity.yaml from dir if present and applies NIGHTCITY_*
// environment overrides, e.g. NIGHTCITY_WINDOW_WIDTH.
func Load(dir string) (Config, error) {
	var cfg Config

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.City.Buildings < 0 || c.City.Vehicles < 0 || c.City.Billboards < 0 {
		return fmt.Errorf("negative entity count in %+v", c.City)
	}
	if c.Stats.Interval <= 0 {
		return fmt.Errorf("stats interval must be positive, got %v", c.Stats.Interval)
	}
	return nil
}
