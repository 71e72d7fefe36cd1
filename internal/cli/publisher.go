package cli

import (
	"context"
	"flag"
	"fmt"
	"mcaststats/internal/global"
	"mcaststats/internal/lifecycle"
	"mcaststats/internal/logctx"
	"mcaststats/internal/network"
	"mcaststats/internal/publisher"
	"os"
)

func newPublishFlags(commandname string) (commandFlags *flag.FlagSet, configPath *string) {
	configPath = new(string)
	commandFlags = flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, configPath, global.DefaultPublisherConfigPath)

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	return
}

// Runs the publisher until a signal arrives or sending fails
func PublishMode(ctx context.Context, commandname string, args []string) (err error) {
	commandFlags, configPath := newPublishFlags(commandname)
	commandFlags.Parse(args)
	applyLogLevel(ctx)
	ctx = logctx.AppendCtxTag(ctx, global.NSCLI)

	xmlCfg, err := publisher.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	daemonConfig, err := xmlCfg.NewDaemonConf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !network.IsMulticastGroup(daemonConfig.Group) {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"Address %s is not in the multicast range\n", daemonConfig.Group)
	}

	pubDaemon := publisher.NewDaemon(daemonConfig)
	err = pubDaemon.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting publishing daemon: %v\n", err)
		os.Exit(1)
	}

	go lifecycle.SignalHandler(ctx, pubDaemon)

	notifyStarted(ctx, fmt.Sprintf("Publishing to %s:%d", daemonConfig.GroupAddress, daemonConfig.Port))

	err = pubDaemon.Run()
	return
}

// Tells the service manager startup is complete
func notifyStarted(ctx context.Context, status string) {
	err := lifecycle.NotifyReady(ctx)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify ready failed: %v\n", err)
	}
	err = lifecycle.NotifyStatus(ctx, status)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify status failed: %v\n", err)
	}
}
