package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds CLI configuration for the redmine command.
type Config struct {
	URL      string
	APIKey   string
	Login    string
	Password string

	ObjectsPerPage int
	HTTPTimeout    time.Duration
	Debug          bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ObjectsPerPage: 25,
		HTTPTimeout:    30 * time.Second,
		APIKey:         os.Getenv("REDMINE_API_KEY"),
	}
}

// Validate checks the configuration for errors and normalizes the URL.
func (c *Config) Validate() error {
	c.URL = strings.TrimSpace(c.URL)
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	c.URL = strings.TrimRight(c.URL, "/")

	if c.Password != "" && c.Login == "" {
		return fmt.Errorf("password given without login")
	}
	if c.ObjectsPerPage <= 0 {
		return fmt.Errorf("per-page must be positive, got %d", c.ObjectsPerPage)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Masked returns a copy safe for logging.
func (c Config) Masked() Config {
	if c.APIKey != "" {
		c.APIKey = "*****"
	}
	if c.Password != "" {
		c.Password = "*****"
	}
	return c
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets a non-zero int value if flag not changed. Negative values are
// kept so Validate can reject them.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
