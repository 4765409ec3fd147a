package config

import (
	"log/slog"
	"os"
	"strings"

	codecini "github.com/go-viper/encoding/ini"
	"github.com/spf13/viper"
)

// Resolver answers (section, key) lookups with a fixed precedence:
// process environment first, then the settings file parsed at construction.
// The file snapshot is immutable after New, so a single Resolver may be
// shared by concurrent readers without locking.
type Resolver struct {
	file *viper.Viper
	log  *slog.Logger
}

// New parses the INI settings file at path and returns a ready Resolver.
// A missing or malformed file is not fatal: the resolver logs a warning and
// degrades to environment-only resolution, so deploy-time overrides keep
// working even when the checked-in file is broken.
func New(path string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		log.Warn("settings file unusable, resolving from environment only",
			slog.String("file", path),
			slog.String("error", err.Error()))

		// A failed read can leave partial state behind; start from a
		// clean instance so lookups see an empty mapping.
		v = newViper()
		v.SetConfigType("ini")
	} else {
		log.Debug("loaded settings file", slog.String("file", v.ConfigFileUsed()))
	}

	return &Resolver{file: v, log: log}
}

// newViper builds a viper instance that can decode INI. Viper 1.20 moved
// the INI codec out of core, so it has to be registered explicitly.
func newViper() *viper.Viper {
	registry := viper.NewCodecRegistry()
	if err := registry.RegisterCodec("ini", codecini.Codec{}); err != nil {
		// only reachable with an invalid format name
		panic(err)
	}
	return viper.NewWithOptions(viper.WithCodecRegistry(registry))
}

// Get resolves a value for (section, key). The environment variable named
// {SECTION}_{KEY} (upper-cased) wins when set, even when set to the empty
// string. Otherwise the parsed file is consulted. The boolean reports
// whether either source had the key; absence is not an error.
func (r *Resolver) Get(section, key string) (string, bool) {
	if val, ok := os.LookupEnv(EnvName(section, key)); ok {
		return val, true
	}

	fileKey := strings.ToLower(section) + "." + strings.ToLower(key)
	if r.file.IsSet(fileKey) {
		return r.file.GetString(fileKey), true
	}

	return "", false
}

// GetDefault resolves like Get but substitutes fallback on absence.
func (r *Resolver) GetDefault(section, key, fallback string) string {
	if val, ok := r.Get(section, key); ok {
		return val
	}
	return fallback
}

// EnvName reports the environment variable consulted for (section, key),
// e.g. EnvName("db", "host") == "DB_HOST". Useful in error messages that
// tell operators which variable to export.
func EnvName(section, key string) string {
	return strings.ToUpper(section) + "_" + strings.ToUpper(key)
}
