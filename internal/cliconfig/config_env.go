package cliconfig

import "os"

// ApplyEnvConfig applies REDMINE_* environment variables to cfg, skipping
// flags set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", os.Getenv("REDMINE_URL"), &cfg.URL)
	s.setString("api-key", os.Getenv("REDMINE_API_KEY"), &cfg.APIKey)
	s.setString("login", os.Getenv("REDMINE_LOGIN"), &cfg.Login)
	s.setString("password", os.Getenv("REDMINE_PASSWORD"), &cfg.Password)

	if err := s.setIntFromString("per-page", os.Getenv("REDMINE_OBJECTS_PER_PAGE"), &cfg.ObjectsPerPage); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("REDMINE_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	s.setBoolFromString("debug", os.Getenv("REDMINE_DEBUG"), &cfg.Debug)
	return nil
}
