package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeOrganize() error {
	c.Organize.TargetDir = strings.TrimSpace(c.Organize.TargetDir)
	if c.Organize.TargetDir == "" {
		if value, ok := os.LookupEnv("TIDY_TARGET_DIR"); ok {
			c.Organize.TargetDir = strings.TrimSpace(value)
		}
	}
	if c.Organize.TargetDir == "" {
		c.Organize.TargetDir = DefaultTargetDir()
	}
	var err error
	if c.Organize.TargetDir, err = expandPath(c.Organize.TargetDir); err != nil {
		return fmt.Errorf("organize.target_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
