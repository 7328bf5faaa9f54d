package koanfstore

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/config"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "TYPEDCONFIG_"

const delim = "."

// Loader builds a koanf tree from multiple sources.
type Loader struct {
	k           *koanf.Koanf
	envPrefix   string
	filePath    string
	dotEnvFiles []string
	logger      *slog.Logger
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
// An empty prefix disables environment loading in Load.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path (.yaml, .yml, or .json).
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithDotEnvFiles sets .env files read by Load. Missing files are an error.
func WithDotEnvFiles(paths ...string) Option {
	return func(l *Loader) {
		l.dotEnvFiles = append(l.dotEnvFiles, paths...)
	}
}

// WithLogger sets the logger for load progress. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New(delim),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads the configured file, .env files, and environment, in that order,
// and returns the resulting Store.
func (l *Loader) Load() (*Store, error) {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if len(l.dotEnvFiles) > 0 {
		if err := l.LoadDotEnv(l.dotEnvFiles...); err != nil {
			return nil, fmt.Errorf("load dotenv: %w", err)
		}
	}

	if l.envPrefix != "" {
		if err := l.LoadEnv(); err != nil {
			return nil, fmt.Errorf("load env: %w", err)
		}
	}

	return l.Store(), nil
}

// LoadFile loads configuration from a YAML or JSON file.
// JSON is decoded by config.FromFile so integers stay integers.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		cfg, err := config.FromFile(path)
		if err != nil {
			return err
		}
		if err := l.k.Load(mapProvider(cfg.Raw()), nil); err != nil {
			return fmt.Errorf("load file %s: %w", path, err)
		}
		l.debug("config file loaded", slog.String("path", path))
		return nil
	}

	provider := file.Provider(path)
	if err := l.k.Load(provider, yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	l.debug("config file loaded", slog.String("path", path))
	return nil
}

// LoadEnv loads configuration from environment variables.
// Variables use the format PREFIX_SECTION_KEY and map to section.key.
// Example: TYPEDCONFIG_SERVER_HOST=0.0.0.0 sets server.host.
func (l *Loader) LoadEnv() error {
	provider := env.Provider(l.envPrefix, delim, l.envKey)
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	l.debug("environment loaded", slog.String("prefix", l.envPrefix))
	return nil
}

// LoadDotEnv reads .env files without modifying the process environment.
// Only variables carrying the loader's prefix are kept, and their names are
// mapped the same way as LoadEnv.
func (l *Loader) LoadDotEnv(paths ...string) error {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return fmt.Errorf("read dotenv %s: %w", strings.Join(paths, ","), err)
	}

	flat := make(map[string]any, len(vars))
	for name, value := range vars {
		if !strings.HasPrefix(name, l.envPrefix) {
			continue
		}
		if key := l.envKey(name); key != "" {
			flat[key] = value
		}
	}

	if err := l.k.Load(mapProvider(maps.Unflatten(flat, delim)), nil); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}

	l.debug("dotenv loaded", slog.Int("files", len(paths)), slog.Int("keys", len(flat)))
	return nil
}

// LoadMap loads configuration from a nested map (useful for defaults or testing).
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Store returns a Store over everything loaded so far.
// Later loads remain visible through the returned Store.
func (l *Loader) Store() *Store {
	return New(l.k)
}

// Keys returns all configuration keys.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}

// envKey maps TYPEDCONFIG_SERVER_HOST to server.host.
func (l *Loader) envKey(name string) string {
	name = strings.TrimPrefix(name, l.envPrefix)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, "_", delim)
}

func (l *Loader) debug(msg string, attrs ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, attrs...)
	}
}

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("koanfstore: map provider has no byte form")

// mapProvider feeds an already-decoded tree to koanf. koanf calls Read for
// providers loaded without a parser.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
