// Package config resolves rpnxdoc settings from flags, the environment,
// .env files and an optional config file.
//
// Priority (highest to lowest): flags > RPNX_* environment variables >
// local .env > config-dir .env > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"rpnx/internal/output"
)

// Setting keys, shared with the cobra flag names.
const (
	KeyColor    = "color"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyWidth    = "width"
)

// EnvPrefix is the prefix of every environment variable the tools read.
const EnvPrefix = "RPNX"

// Config holds resolved settings.
type Config struct {
	Color    output.ColorMode
	LogLevel string
	LogFile  string
	Width    int

	// Sources lists the files that contributed values, in load order.
	Sources []string
}

// Paths tells Load where to look for files.
type Paths struct {
	ConfigDir string // Directory holding config.{yaml,toml} and .env
	WorkDir   string // Directory holding the local .env
}

// DefaultPaths returns $RPNX_CONFIG_DIR (or the user config dir + "/rpnx")
// and the current working directory. Unavailable entries are left empty.
func DefaultPaths() Paths {
	var p Paths
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		p.ConfigDir = dir
	} else if dir, err := os.UserConfigDir(); err == nil {
		p.ConfigDir = filepath.Join(dir, "rpnx")
	}
	if wd, err := os.Getwd(); err == nil {
		p.WorkDir = wd
	}
	return p
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWidth, 80)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and .env files into v and resolves the result.
// Flags must already be bound to v.
func Load(v *viper.Viper, paths Paths) (*Config, error) {
	var sources []string

	if paths.ConfigDir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			sources = append(sources, v.ConfigFileUsed())
		}
	}

	for _, dir := range []string{paths.ConfigDir, paths.WorkDir} {
		if dir == "" {
			continue
		}
		envPath := filepath.Join(dir, ".env")
		values, err := readDotEnv(envPath)
		if err != nil {
			return nil, err
		}
		if values == nil {
			continue
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", envPath, err)
		}
		sources = append(sources, envPath)
	}

	color, err := output.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return nil, err
	}

	width := v.GetInt(KeyWidth)
	if width <= 0 {
		return nil, fmt.Errorf("invalid width %d: must be positive", width)
	}

	return &Config{
		Color:    color,
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Width:    width,
		Sources:  sources,
	}, nil
}

// readDotEnv parses a .env file and returns its RPNX_* entries keyed by
// setting name. A missing file yields nil without error.
func readDotEnv(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	values := make(map[string]interface{})
	for key, value := range envMap {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok || name == "" {
			continue
		}
		values[strings.ToLower(strings.ReplaceAll(name, "_", "-"))] = value
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
