package cli

import "mcaststats/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Multicast Statistics (mcaststats)",
		FullDescription: "  Publishes random samples to a multicast group and reports rolling statistics on the receiving side",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Publishing
	root.ChildCommands["publish"] = &global.CommandSet{
		CommandName:     "publish",
		Description:     "Publish Samples",
		FullDescription: "Sends one random integer per second from the configured range to the configured multicast group",
		ChildCommands:   nil,
	}

	// Subscribing
	root.ChildCommands["subscribe"] = &global.CommandSet{
		CommandName:     "subscribe",
		Description:     "Subscribe To Samples",
		FullDescription: "Joins the configured multicast group and keeps the last 1000 samples. Press Enter to toggle receiving and print statistics",
		ChildCommands:   nil,
	}

	// Setup
	root.ChildCommands["configure"] = &global.CommandSet{
		CommandName:     "configure",
		Description:     "Setup Actions",
		FullDescription: "Write template configuration files for the publisher or subscriber",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
