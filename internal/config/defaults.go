package config

const (
	defaultBaseDir              = "."
	defaultLogDir               = "custom/logs"
	defaultBaseline             = "custom/baseline/all_sites_master_channels.csv"
	defaultPreferred            = "custom/rules/prefered-scoped-channels.csv"
	defaultExcludeCategories    = "custom/rules/exclude_categories.csv"
	defaultEnrichedOutput       = "custom/baseline/all_sites_master_channels_enriched.csv"
	defaultVersionedDir         = "custom/baseline/versioned"
	defaultCuratedList          = "custom/output/custom.channels.xml"
	defaultMergedOutput         = "custom/output/custom.channels.merged.xml"
	defaultDuplicatesReport     = "custom/output/merge_review_duplicates.csv"
	defaultUnmatchedReport      = "custom/output/merge_review_unmatched.csv"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultLogMaxSizeMB         = 5
	defaultLogMaxBackups        = 3
	defaultLogRetentionDays     = 60
	defaultVersionRetentionDays = 0
)

// DefaultSources returns the candidate CSVs in descending priority.
func DefaultSources() []Source {
	return []Source{
		{Name: "Draft-Keep.csv", Path: "custom/output/Draft-Keep.csv"},
		{Name: "matched_channels.csv", Path: "custom/output/matched_channels.csv"},
		{Name: "recommended_custom_list.csv", Path: "custom/output/recommended_custom_list.csv"},
	}
}

// Default returns a Config populated with repository defaults. Paths stay
// relative until Finalize resolves them against base_dir. BaseDir and
// Logging.Level are left empty so environment fallbacks can apply.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Enrich: Enrich{
			Baseline:               defaultBaseline,
			Preferred:              defaultPreferred,
			ExcludeCategories:      defaultExcludeCategories,
			Output:                 defaultEnrichedOutput,
			VersionedDir:           defaultVersionedDir,
			VersionedRetentionDays: defaultVersionRetentionDays,
		},
		Merge: Merge{
			CuratedList:      defaultCuratedList,
			Output:           defaultMergedOutput,
			DuplicatesReport: defaultDuplicatesReport,
			UnmatchedReport:  defaultUnmatchedReport,
			Sources:          DefaultSources(),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
