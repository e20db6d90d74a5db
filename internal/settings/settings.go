// Package settings loads worksheet defaults from built-in values, a YAML
// file and MATHSHEET_* environment variables.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// EnvPrefix prefixes every environment override, e.g. MATHSHEET_TIER.
const EnvPrefix = "MATHSHEET"

// Settings holds the defaults front ends start from.
type Settings struct {
	// Title heads the question sheet.
	Title string `mapstructure:"title" json:"title" yaml:"title"`

	// Seed fixes the random source. Zero draws a fresh seed per run.
	Seed uint64 `mapstructure:"seed" json:"seed" yaml:"seed"`

	Tier           int     `mapstructure:"tier" json:"tier" yaml:"tier"`
	IncludeAlgebra bool    `mapstructure:"include_algebra" json:"include_algebra" yaml:"include_algebra"`
	Arithmetic     Section `mapstructure:"arithmetic" json:"arithmetic" yaml:"arithmetic"`
	Algebra        Section `mapstructure:"algebra" json:"algebra" yaml:"algebra"`

	// path is the file the settings were read from, if any.
	path string
}

// Section is a question count and per-question point value.
type Section struct {
	Count  int     `mapstructure:"count" json:"count" yaml:"count"`
	Points float64 `mapstructure:"points" json:"points" yaml:"points"`
}

// Path returns the settings file that was read, or "" for none.
func (s *Settings) Path() string {
	return s.path
}

// Worksheet converts the settings into an assembler configuration.
func (s *Settings) Worksheet() worksheet.Config {
	return worksheet.Config{
		Tier:           problemgen.Tier(s.Tier),
		IncludeAlgebra: s.IncludeAlgebra,
		Arithmetic:     worksheet.Section{Count: s.Arithmetic.Count, Points: s.Arithmetic.Points},
		Algebra:        worksheet.Section{Count: s.Algebra.Count, Points: s.Algebra.Points},
		Title:          s.Title,
	}
}

// Default returns the built-in settings.
func Default() *Settings {
	d := worksheet.DefaultConfig()
	return &Settings{
		Title:          d.Title,
		Tier:           int(d.Tier),
		IncludeAlgebra: d.IncludeAlgebra,
		Arithmetic:     Section{Count: d.Arithmetic.Count, Points: d.Arithmetic.Points},
		Algebra:        Section{Count: d.Algebra.Count, Points: d.Algebra.Points},
	}
}

// Load reads settings with this precedence, highest first:
//  1. MATHSHEET_* environment variables
//  2. the file at path, or the user config file when path is empty
//  3. built-in defaults
//
// A missing user config file is not an error; a missing explicit path is.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		used = path
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(UserConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		} else {
			used = v.ConfigFileUsed()
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	s.path = used

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings against the settings JSON schema.
func (s *Settings) Validate() error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := validateDocument(Schema, raw); err != nil {
		source := s.path
		if source == "" {
			source = "defaults and environment"
		}
		return &ValidationError{Source: source, Err: err}
	}
	return nil
}

// setDefaults configures default values. Every key is registered so
// AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("title", d.Title)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("tier", d.Tier)
	v.SetDefault("include_algebra", d.IncludeAlgebra)
	v.SetDefault("arithmetic.count", d.Arithmetic.Count)
	v.SetDefault("arithmetic.points", d.Arithmetic.Points)
	v.SetDefault("algebra.count", d.Algebra.Count)
	v.SetDefault("algebra.points", d.Algebra.Points)
}

// UserConfigDir returns the XDG config directory for mathsheet.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mathsheet")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "mathsheet")
	}
	return filepath.Join(home, ".config", "mathsheet")
}

// UserConfigPath returns the path of the user config file.
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), "config.yaml")
}
