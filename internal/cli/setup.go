package cli

import (
	"flag"
	"fmt"
	"mcaststats/internal/global"
	"mcaststats/internal/install"
	"os"
)

// Setup/configuration options
func SetupMode(cliOpts *global.CommandSet, commandname string, args []string) {
	var newPubConf bool
	var newSubConf bool
	var templateConfPath string

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	commandFlags.StringVar(&templateConfPath, "c", "", "Path to template config file")
	commandFlags.StringVar(&templateConfPath, "config", "", "Path to template config file")
	commandFlags.BoolVar(&newPubConf, "publish-config-template", false, "Create new template config for the publisher (using config-path argument)")
	commandFlags.BoolVar(&newSubConf, "subscribe-config-template", false, "Create new template config for the subscriber (using config-path argument)")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
	}
	if len(args) < 1 {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[0:])

	var err error

	if newPubConf {
		err = install.CreatePublisherTemplateConfig(templateConfPath)
	} else if newSubConf {
		err = install.CreateSubscriberTemplateConfig(templateConfPath)
	} else {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
