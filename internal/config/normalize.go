package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSource()
	c.normalizeSubmitter()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("GEDCARD_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeSource() {
	c.Source.System = fallback(c.Source.System, defaultSystem)
	c.Source.Corporation = strings.TrimSpace(c.Source.Corporation)
	c.Source.Author = fallback(c.Source.Author, defaultAuthor)
	c.Source.Type = fallback(c.Source.Type, defaultSourceType)
	c.Source.IDType = fallback(c.Source.IDType, defaultIDType)
}

func (c *Config) normalizeSubmitter() {
	if value, ok := os.LookupEnv("GEDCARD_SUBMITTER"); ok && strings.TrimSpace(value) != "" {
		c.Submitter.Name = value
	}
	c.Submitter.Name = fallback(c.Submitter.Name, defaultSubmitter)
	c.Submitter.WWW = strings.TrimSpace(c.Submitter.WWW)
	lines := c.Submitter.Address[:0]
	for _, line := range c.Submitter.Address {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	c.Submitter.Address = lines
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(fallback(c.Logging.Format, defaultLogFormat))
	c.Logging.Level = strings.ToLower(fallback(c.Logging.Level, defaultLogLevel))
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
