package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSubmitter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Export.RecordHistory && strings.TrimSpace(c.Paths.HistoryDB) == "" {
		return errors.New("paths.history_db must be set when export.record_history is true")
	}
	return nil
}

func (c *Config) validateSubmitter() error {
	if strings.ContainsAny(c.Submitter.Name, "\r\n") {
		return errors.New("submitter.name must be a single line")
	}
	for i, line := range c.Submitter.Address {
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("submitter.address[%d] must be a single line", i)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
