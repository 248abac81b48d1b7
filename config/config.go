// Package config resolves lowpoint settings from flags, environment
// variables (LOWPOINT_*), an optional .env file and an optional YAML config
// file, in that order of precedence.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lowpoint/lowpoint"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LOWPOINT"

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig      = "config"
	KeyRows        = "rows"
	KeyCols        = "cols"
	KeySeed        = "seed"
	KeyGrid        = "grid"
	KeyTieBreak    = "tie_break"
	KeyColor       = "color"
	KeyWorkers     = "workers"
	KeyCacheSize   = "cache_size"
	KeyMetricsFile = "metrics_file"
)

// Defaults.
const (
	DefaultRows      = 10
	DefaultCols      = 10
	DefaultSeed      = 0
	DefaultWorkers   = 4
	DefaultCacheSize = 1 << 20
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds resolved settings.
type Config struct {
	Rows        int    // generated map rows; ignored when GridFile is set
	Cols        int    // generated map columns; ignored when GridFile is set
	Seed        int64  // generator seed
	GridFile    string // YAML/JSON grid document to load instead of generating
	TieBreak    lowpoint.TieBreak
	Color       bool   // highlight the winning path
	Workers     int    // concurrent searches in batch mode; 0 means unbounded
	CacheSize   int64  // result cache capacity in entries; 0 disables caching
	MetricsFile string // prometheus textfile written after batch runs
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRows, DefaultRows)
	v.SetDefault(KeyCols, DefaultCols)
	v.SetDefault(KeySeed, DefaultSeed)
	v.SetDefault(KeyTieBreak, lowpoint.Manhattan.String())
	v.SetDefault(KeyColor, false)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyCacheSize, DefaultCacheSize)
}

// Prepare wires environment lookup on v and reads the config file named by
// the "config" key, if any. A .env file in the working directory is loaded
// first when present; variables already set in the environment win.
func Prepare(v *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "config: loading .env")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "config: reading %s", file)
		}
	}
	return nil
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	rule, err := lowpoint.ParseTieBreak(v.GetString(KeyTieBreak))
	if err != nil {
		return Config{}, errors.Wrap(ErrInvalid, err.Error())
	}
	cfg := Config{
		Rows:        v.GetInt(KeyRows),
		Cols:        v.GetInt(KeyCols),
		Seed:        v.GetInt64(KeySeed),
		GridFile:    v.GetString(KeyGrid),
		TieBreak:    rule,
		Color:       v.GetBool(KeyColor),
		Workers:     v.GetInt(KeyWorkers),
		CacheSize:   v.GetInt64(KeyCacheSize),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.GridFile == "" && (c.Rows < 1 || c.Cols < 1):
		return errors.Wrapf(ErrInvalid, "map size %dx%d", c.Rows, c.Cols)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers=%d", c.Workers)
	case c.CacheSize < 0:
		return errors.Wrapf(ErrInvalid, "cache_size=%d", c.CacheSize)
	}
	return nil
}
