package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "expenses.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EXPENSES_"

// Config represents the top-level expenses.yaml configuration.
type Config struct {
	Paths  PathsConfig  `yaml:"paths"`
	Parse  ParseConfig  `yaml:"parse"`
	Compat CompatConfig `yaml:"compat"`
	Log    LogConfig    `yaml:"log"`
	Git    GitConfig    `yaml:"git"`
}

// PathsConfig locates workspace files, relative to the workspace root.
type PathsConfig struct {
	Lexicon    string `yaml:"lexicon"`
	Import     string `yaml:"import"`
	Processed  string `yaml:"processed"`
	Classified string `yaml:"classified"`
	RunLog     string `yaml:"run_log"`
}

// ParseConfig tunes export parsing.
type ParseConfig struct {
	SkipOffsets []int `yaml:"skip_offsets,omitempty"` // empty = built-in order
}

// CompatConfig holds switches for behavior kept from older exports.
type CompatConfig struct {
	ZeroMissingAmounts bool `yaml:"zero_missing_amounts"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an expenses.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadWorkspace loads <root>/.env if present, then <root>/expenses.yaml
// (defaults when missing), then applies EXPENSES_* overrides and validates.
func LoadWorkspace(root string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := Load(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Lexicon:    "rules/categories.yaml",
			Import:     "import",
			Processed:  "import/processed",
			Classified: "classified",
			RunLog:     "logs/import-log.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AuthorName:  "expenses",
			AuthorEmail: "expenses@localhost",
		},
	}
}

// ApplyEnv overrides fields from EXPENSES_* variables using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("LEXICON", &c.Paths.Lexicon)
	str("IMPORT_DIR", &c.Paths.Import)
	str("PROCESSED_DIR", &c.Paths.Processed)
	str("CLASSIFIED_DIR", &c.Paths.Classified)
	str("RUN_LOG", &c.Paths.RunLog)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	str("GIT_AUTHOR_NAME", &c.Git.AuthorName)
	str("GIT_AUTHOR_EMAIL", &c.Git.AuthorEmail)

	boolean := func(key string, dst *bool) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
		return nil
	}
	if err := boolean("ZERO_MISSING_AMOUNTS", &c.Compat.ZeroMissingAmounts); err != nil {
		return err
	}
	return boolean("GIT_AUTO_COMMIT", &c.Git.AutoCommit)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	paths := []struct{ name, value string }{
		{"paths.lexicon", c.Paths.Lexicon},
		{"paths.import", c.Paths.Import},
		{"paths.processed", c.Paths.Processed},
		{"paths.classified", c.Paths.Classified},
		{"paths.run_log", c.Paths.RunLog},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" {
			errs = append(errs, p.name+" must not be empty")
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format %q", c.Log.Format))
	}

	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		errs = append(errs, "git.auto_commit needs author_name and author_email")
	}

	for _, off := range c.Parse.SkipOffsets {
		if off < 0 {
			errs = append(errs, fmt.Sprintf("invalid skip offset %d", off))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Resolve joins a configured path to root unless it is already absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
