package cli

import (
	"context"
	"flag"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
)

func SetGlobalArguments(fs *flag.FlagSet) (level *int) {
	fs.IntVar(&global.Verbosity, "v", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
	fs.IntVar(&global.Verbosity, "verbosity", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
	level = &global.Verbosity
	return
}

func SetCommon(fs *flag.FlagSet, configPath *string, defaultPath string) {
	fs.StringVar(configPath, "c", defaultPath, "Path to the configuration file")
	fs.StringVar(configPath, "config", defaultPath, "Path to the configuration file")
}

// Applies subcommand verbosity to the already running global logger
func applyLogLevel(ctx context.Context) {
	logctx.SetLogLevel(ctx, global.Verbosity)
}
