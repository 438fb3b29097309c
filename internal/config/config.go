// Package config loads CLI-level configuration for the resolveaddr
// command: data file paths, fuzzy index realization, cache size, and
// logging mode. The core gazetteer package takes plain Go values and
// never imports this package or viper directly.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved CLI configuration, after defaults, an optional
// YAML file, and environment variable overrides have all been applied.
type Config struct {
	ProvinceFile   string
	DistrictFile   string
	WardFile       string
	ReferenceFile  string
	FuzzyIndexKind string // "bktree" or "trie"
	Bias           float64
	CacheSize      int
	Env            string // "development" or "production", governs zap's config
}

// RequestTimeout returns a fixed per-line time ceiling of 1.5s for batch
// mode. The resolveaddr command does not read it and enforces no
// per-line timeout; Resolve itself has no suspension points.
func RequestTimeout() time.Duration { return 1500 * time.Millisecond }

// Load reads configPath (if non-empty and present) as YAML, applies
// defaults for anything unset, then lets environment variables with the
// RESOLVEADDR_ prefix override any field. Grounded on the teacher's
// loadConfig: SetDefault for every field, AutomaticEnv, then a
// best-effort ReadInConfig.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetDefault("data.province_file", "testdata/list_province.txt")
	v.SetDefault("data.district_file", "testdata/list_district.txt")
	v.SetDefault("data.ward_file", "testdata/list_ward.txt")
	v.SetDefault("data.reference_file", "testdata/reference.txt")
	v.SetDefault("resolver.fuzzy_index", "bktree")
	v.SetDefault("resolver.bias", 0.2)
	v.SetDefault("cache.size", 10000)
	v.SetDefault("app.env", "development")

	v.SetEnvPrefix("RESOLVEADDR")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// An explicit config path that does not exist surfaces as a
			// filesystem not-exist error rather than ConfigFileNotFoundError.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	return Config{
		ProvinceFile:   v.GetString("data.province_file"),
		DistrictFile:   v.GetString("data.district_file"),
		WardFile:       v.GetString("data.ward_file"),
		ReferenceFile:  v.GetString("data.reference_file"),
		FuzzyIndexKind: v.GetString("resolver.fuzzy_index"),
		Bias:           v.GetFloat64("resolver.bias"),
		CacheSize:      v.GetInt("cache.size"),
		Env:            v.GetString("app.env"),
	}, nil
}
