// Package config loads the settings of the report compiler.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/benedoc-inc/nearmiss/types"
)

// Environment variables that override the file settings.
const (
	EnvLanguage    = "NEARMISS_LANGUAGE"
	EnvCatalogDir  = "NEARMISS_CATALOG_DIR"
	EnvAssetsDir   = "NEARMISS_ASSETS_DIR"
	EnvBodyCapture = "NEARMISS_BODY_CAPTURE"
	EnvVerbose     = "NEARMISS_VERBOSE"
)

// Config is the compiler configuration.
type Config struct {
	// Language is a BCP 47 tag matched onto fr, en or de.
	Language string `yaml:"language"`
	// CatalogDir holds <lang>.txt or <lang>.yaml text files. Empty uses the
	// built-in texts.
	CatalogDir string `yaml:"catalog_dir"`
	// AssetsDir holds box.png, empty_box.png and blank.png. Empty draws them.
	AssetsDir string `yaml:"assets_dir"`
	// BodyCapture is the body diagram image for bodily injuries.
	BodyCapture string `yaml:"body_capture"`
	Verbose     bool   `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Language:    "fr",
		BodyCapture: "body_capture.png",
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env
// file from the working directory and the environment overrides. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, types.PathError(types.ErrCodeConfiguration, path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, types.WrapErrorf(types.ErrCodeConfiguration, err, "cannot parse config %s", path).
				WithContext("path", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if _, err := cfg.Lang(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := os.Getenv(EnvCatalogDir); v != "" {
		c.CatalogDir = v
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		c.AssetsDir = v
	}
	if v := os.Getenv(EnvBodyCapture); v != "" {
		c.BodyCapture = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return types.WrapErrorf(types.ErrCodeConfiguration, err, "invalid %s %q", EnvVerbose, v)
		}
		c.Verbose = b
	}
	return nil
}

// Lang returns the configured report language.
func (c *Config) Lang() (types.Language, error) {
	lang, err := types.ParseLanguage(c.Language)
	if err != nil {
		return "", types.WrapErrorf(types.ErrCodeConfiguration, err, "invalid language %q", c.Language)
	}
	return lang, nil
}
