package cli

import (
	"context"
	"flag"
	"fmt"
	"mcaststats/internal/global"
	"mcaststats/internal/lifecycle"
	"mcaststats/internal/logctx"
	"mcaststats/internal/subscriber"
	"os"

	"golang.org/x/term"
)

type subscribeOptions struct {
	configPath string
	strictJoin bool
}

func newSubscribeFlags(commandname string) (commandFlags *flag.FlagSet, opts *subscribeOptions) {
	opts = &subscribeOptions{}
	commandFlags = flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &opts.configPath, global.DefaultSubscriberConfigPath)
	commandFlags.BoolVar(&opts.strictJoin, "strict-join", false, "Exit when the multicast group cannot be joined")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	return
}

// Runs the subscriber until a signal arrives
func SubscribeMode(ctx context.Context, commandname string, args []string) {
	commandFlags, opts := newSubscribeFlags(commandname)
	commandFlags.Parse(args)
	applyLogLevel(ctx)
	ctx = logctx.AppendCtxTag(ctx, global.NSCLI)

	xmlCfg, err := subscriber.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	daemonConfig, err := xmlCfg.NewDaemonConf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	daemonConfig.StrictJoin = opts.strictJoin

	console := subscriber.Console{
		Input:       os.Stdin,
		Output:      os.Stdout,
		ClearScreen: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.WarnLog,
			"Standard input is not a terminal, toggling reads newlines from it\n")
	}

	subDaemon := subscriber.NewDaemon(daemonConfig, console)
	err = subDaemon.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting subscribing daemon: %v\n", err)
		os.Exit(1)
	}

	go lifecycle.SignalHandler(ctx, subDaemon)

	notifyStarted(ctx, fmt.Sprintf("Listening on port %d", daemonConfig.Port))

	subDaemon.Run()
}
