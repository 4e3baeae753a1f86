package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types.
type FileConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	Login          string `toml:"login"`
	Password       string `toml:"password"`
	ObjectsPerPage int    `toml:"objects_per_page"`
	HTTPTimeout    string `toml:"http_timeout"`
	Debug          *bool  `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.redmine/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".redmine", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies fc to cfg, skipping flags set on the command line.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", fc.URL, &cfg.URL)
	s.setString("api-key", fc.APIKey, &cfg.APIKey)
	s.setString("login", fc.Login, &cfg.Login)
	s.setString("password", fc.Password, &cfg.Password)
	s.setInt("per-page", fc.ObjectsPerPage, &cfg.ObjectsPerPage)
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	s.setBool("debug", fc.Debug, &cfg.Debug)
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
