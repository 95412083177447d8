// Package config is resposible for finding, parsing and merging the MusicMustard
// user configuration with the defaults. Configuration locations are different
// depending on the host OS.
//
// Linux/BSD configurations should be in $HOME/.musicmustard/config.json
// Windows configurations should be in %APPDATA%/musicmustard/config.json
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"path/filepath"
	"reflect"
	"time"

	"github.com/spf13/afero"

	"github.com/ironsmile/musicmustard/src/helpers"
)

// ConfigName is the name of the configuration file in the user directory.
const ConfigName = "config.json"

// Possible values for the sessions store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the configuration type. It has a representation for everything in
// config.json.
type Config struct {
	Listen         string `json:"listen"`
	Gzip           bool   `json:"gzip"`
	ReadTimeout    int    `json:"read_timeout"`
	WriteTimeout   int    `json:"write_timeout"`
	MaxHeadersSize int    `json:"max_header_bytes"`
	LogFile        string `json:"log_file"`

	// UserAgent is sent with every MusicBrainz request. When empty one with the
	// current version is used.
	UserAgent string `json:"user_agent"`

	// Secret is used for signing the result tokens. When empty a random one is
	// generated every time the server starts.
	Secret string `json:"secret"`

	Catalog  Catalog  `json:"catalog"`
	Quiz     Quiz     `json:"quiz"`
	Sessions Sessions `json:"sessions"`
}

// Catalog configures how MusicBrainz is reached.
type Catalog struct {
	APIURL string `json:"api_url"`
	WebURL string `json:"web_url"`

	// RequestTimeout is in seconds.
	RequestTimeout int `json:"request_timeout"`
}

// Quiz configures the question generation.
type Quiz struct {
	MaxAttempts    int      `json:"max_attempts"`
	CuratedArtists []string `json:"curated_artists"`
}

// Sessions configures where quiz sessions are kept.
type Sessions struct {
	Store string `json:"store"`

	// TTL is in seconds.
	TTL   int   `json:"ttl"`
	Redis Redis `json:"redis"`
}

// Redis holds the connection settings for the Redis sessions store.
type Redis struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// Default returns the configuration used when the user has not changed anything.
func Default() Config {
	return Config{
		Listen:         "localhost:8080",
		Gzip:           true,
		ReadTimeout:    15,
		WriteTimeout:   60,
		MaxHeadersSize: 1 << 20,
		LogFile:        "",
		UserAgent:      "",
		Catalog: Catalog{
			APIURL:         "https://musicbrainz.org",
			WebURL:         "https://musicbrainz.org",
			RequestTimeout: 10,
		},
		Quiz: Quiz{
			MaxAttempts: 10,
		},
		Sessions: Sessions{
			Store: StoreMemory,
			TTL:   int((2 * time.Hour).Seconds()),
			Redis: Redis{
				Address: "localhost:6379",
			},
		},
	}
}

// FindAndParse reads the configuration file at `path` from `fsys` and returns it
// merged on top of the defaults. Keys missing from the file keep their default
// values.
//
// When `path` is empty the file in the user directory is used. It is created
// with the default values if it does not exist yet.
func FindAndParse(fsys afero.Fs, path string) (Config, error) {
	cfg := Default()

	if path == "" {
		userPath, err := UserConfigPath()
		if err != nil {
			return cfg, fmt.Errorf("finding user config: %w", err)
		}

		if !UserConfigExists(fsys, userPath) {
			log.Printf("creating default configuration in %s", userPath)
			if err := writeDefault(fsys, userPath); err != nil {
				return cfg, fmt.Errorf("creating default config: %w", err)
			}
		}
		path = userPath
	}

	if err := cfg.parse(fsys, path); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// parse reads the JSON file at `filename` and populates the fields present in it.
func (cfg *Config) parse(fsys afero.Fs, filename string) error {
	data, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", filename, err)
	}

	return nil
}

// Merge copies all non-zero values from `other` on top of the configuration.
// Nested sections are merged field by field.
func (cfg *Config) Merge(other Config) {
	merge(reflect.ValueOf(cfg).Elem(), reflect.ValueOf(other))
}

func merge(cfgVal, mergedVal reflect.Value) {
	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		cfgField := cfgVal.Field(i)

		if !cfgField.CanSet() {
			continue
		}

		if mergedField.Kind() == reflect.Struct {
			merge(cfgField, mergedField)
			continue
		}

		if mergedField.IsZero() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

// Validate returns an error describing the first unusable value in the
// configuration.
func (cfg *Config) Validate() error {
	if cfg.Listen == "" {
		return errors.New("listen address is empty")
	}

	for name, rawURL := range map[string]string{
		"catalog.api_url": cfg.Catalog.APIURL,
		"catalog.web_url": cfg.Catalog.WebURL,
	} {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s: %q is not an absolute URL", name, rawURL)
		}
	}

	if cfg.Catalog.RequestTimeout < 0 {
		return errors.New("catalog.request_timeout cannot be negative")
	}

	if cfg.Quiz.MaxAttempts < 0 {
		return errors.New("quiz.max_attempts cannot be negative")
	}

	switch cfg.Sessions.Store {
	case StoreMemory:
	case StoreRedis:
		if cfg.Sessions.Redis.Address == "" {
			return errors.New("sessions.redis.address is required for the redis store")
		}
	default:
		return fmt.Errorf(
			"unknown sessions.store %q, must be %q or %q",
			cfg.Sessions.Store, StoreMemory, StoreRedis,
		)
	}

	return nil
}

// RequestTimeout returns the catalog request timeout as a duration.
func (cfg *Config) RequestTimeout() time.Duration {
	return time.Duration(cfg.Catalog.RequestTimeout) * time.Second
}

// SessionTTL returns the sessions TTL as a duration.
func (cfg *Config) SessionTTL() time.Duration {
	return time.Duration(cfg.Sessions.TTL) * time.Second
}

// UserConfigPath returns the full path to the place where the user's
// configuration file should be.
func UserConfigPath() (string, error) {
	path, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(path, ConfigName), nil
}

// UserConfigExists returns true if the user configuration is present and is
// a regular file.
func UserConfigExists(fsys afero.Fs, path string) bool {
	st, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !st.IsDir()
}

func writeDefault(fsys afero.Fs, path string) error {
	data, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	return afero.WriteFile(fsys, path, data, fs.FileMode(0600))
}
