package config

const (
	defaultConfigPath  = "~/.config/gedcard/config.toml"
	projectConfigName  = "gedcard.toml"
	defaultOutputDir   = "~/Downloads/gedcard"
	defaultLogDir      = "~/.local/share/gedcard/logs"
	defaultHistoryDB   = "~/.local/share/gedcard/history.db"
	defaultSystem      = "FamilySearch"
	defaultCorporation = "FamilySearch International"
	defaultAuthor      = "FamilySearch"
	defaultSourceType  = "Web Site"
	defaultIDType      = "FamilySearch Person ID"
	defaultSubmitter   = "gedcard user"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Source: Source{
			System:      defaultSystem,
			Corporation: defaultCorporation,
			Author:      defaultAuthor,
			Type:        defaultSourceType,
			IDType:      defaultIDType,
		},
		Submitter: Submitter{
			Name: defaultSubmitter,
		},
		Export: Export{
			Overwrite:     false,
			RecordHistory: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
