package testsupport

import (
	"path/filepath"
	"testing"

	"gedcard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryDB = filepath.Join(base, "state", "history.db")
	cfgVal.Submitter.Name = "Test Submitter"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSubmitter overrides the submitter contact fields.
func WithSubmitter(name, www string, address ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Submitter = config.Submitter{Name: name, WWW: www, Address: address}
	}
}

// WithoutHistory disables the export ledger.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.RecordHistory = false
	}
}

// WithOverwrite allows exports to replace existing documents.
func WithOverwrite() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.Overwrite = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
