package main

import (
	"github.com/spf13/pflag"
)

type globalFlags struct {
	configPath string
	baseDir    string
	logLevel   string
	logFormat  string
}

func bindGlobalFlags(fs *pflag.FlagSet, flags *globalFlags) {
	fs.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	fs.StringVar(&flags.baseDir, "base-dir", "", "Workspace root that relative paths resolve against")
	fs.StringVar(&flags.logLevel, "log-level", "", "Console log level (debug, info, warn, error)")
	fs.StringVar(&flags.logFormat, "log-format", "", "Console log format (console or json)")
}

type stageFlags struct {
	dryRun      bool
	summaryPath string
}

func bindStageFlags(fs *pflag.FlagSet, flags *stageFlags) {
	fs.BoolVar(&flags.dryRun, "dry-run", false, "Compute results without writing outputs")
	fs.StringVar(&flags.summaryPath, "summary", "", "Write a YAML run summary to this path")
}
