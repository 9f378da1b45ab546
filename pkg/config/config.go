// Package config resolves settings shared by cal and touch from flags, the
// environment and an optional .wutils.yaml file.
package config

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/wutils/pkg/log"
)

const (
	// KeyColor selects when cal highlights today: auto, always or never.
	KeyColor = "color"
	// KeyLogLevel is the minimum level written to stderr.
	KeyLogLevel = "log-level"

	// PathEnv points at an extra directory holding .wutils.yaml.
	PathEnv = "WUTILS_CONFIG_PATH"

	envPrefix  = "WUTILS"
	configName = ".wutils" // .yaml is implicit
	userDir    = "~/.config/wutils"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config interface {
	Color() string
	LogLevel() string
	// File is the config file that was read, empty when none was found.
	File() string
}

// Load reads the config. Flags registered on fs under the same names as the
// config keys win over the environment, which wins over the file.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyLogLevel, log.DefaultLevel)
	v.SetConfigName(configName)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	if dir, err := homedir.Expand(userDir); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")

	if fs != nil {
		for _, key := range []string{KeyColor, KeyLogLevel} {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &fileConfig{
		ColorMode: strings.ToLower(v.GetString(KeyColor)),
		Level:     v.GetString(KeyLogLevel),
		Path:      v.ConfigFileUsed(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type fileConfig struct {
	ColorMode string `json:"color"`
	Level     string `json:"log-level"`
	Path      string `json:"-"`
}

func (f *fileConfig) Color() string    { return f.ColorMode }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) File() string     { return f.Path }

func (f *fileConfig) validate() error {
	_, err := log.ParseLevel(f.Level)
	return err
}

// ValidColor checks a color mode. Only cal reads the mode, so Load leaves
// the check to it.
func ValidColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid %s %q (expected %s, %s or %s)", KeyColor, mode, ColorAuto, ColorAlways, ColorNever)
}
