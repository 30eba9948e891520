package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName   = "route-maps"
	EnvPrefix = "ROUTE_MAPS"
)

type MapConfig struct {
	CenterLat   float64 `mapstructure:"center_lat" json:"center_lat"`
	CenterLng   float64 `mapstructure:"center_lng" json:"center_lng"`
	Zoom        float64 `mapstructure:"zoom" json:"zoom"`
	MinZoom     float64 `mapstructure:"min_zoom" json:"min_zoom"`
	MaxZoom     float64 `mapstructure:"max_zoom" json:"max_zoom"`
	Overlay     string  `mapstructure:"overlay" json:"overlay"`         // GeoJSON backdrop, optional
	Attribution string  `mapstructure:"attribution" json:"attribution"` // drawn in the lower right corner
}

type WindowConfig struct {
	Width  int `mapstructure:"width" json:"width"`
	Height int `mapstructure:"height" json:"height"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format"` // text, json
}

type Config struct {
	Map    MapConfig    `mapstructure:"map" json:"map"`
	Window WindowConfig `mapstructure:"window" json:"window"`
	Log    LogConfig    `mapstructure:"log" json:"log"`

	path string
}

func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	configDir := filepath.Join(home, ".config", AppName)
	os.MkdirAll(configDir, 0755)
	return filepath.Join(configDir, "config.json")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.center_lat", 50.881401)
	v.SetDefault("map.center_lng", 5.956668)
	v.SetDefault("map.zoom", 13)
	v.SetDefault("map.min_zoom", 4)
	v.SetDefault("map.max_zoom", 19)
	v.SetDefault("map.overlay", "")
	v.SetDefault("map.attribution", "© OpenStreetMap contributors")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the config from its default location.
func Load() *Config {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads a JSON config file, applying ROUTE_MAPS_* environment
// overrides (a .env file in the working directory is honoured). A missing
// or unreadable file falls back to defaults.
func LoadFrom(path string) *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring unreadable .env", "err", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("ignoring unreadable config", "path", path, "err", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Warn("ignoring invalid config", "path", path, "err", err)
		cfg = Config{}
		defaults := viper.New()
		setDefaults(defaults)
		if err := defaults.Unmarshal(&cfg); err != nil {
			slog.Warn("could not apply default config", "err", err)
		}
	}
	if cfg.Map.MinZoom > cfg.Map.MaxZoom {
		cfg.Map.MinZoom, cfg.Map.MaxZoom = cfg.Map.MaxZoom, cfg.Map.MinZoom
	}
	cfg.path = path
	return &cfg
}

// Path is the file the config was loaded from and saves to.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		configPath = GetConfigPath()
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}
