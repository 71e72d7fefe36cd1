package cli

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"mcaststats/internal/global"
	"os"
	"slices"
	"strings"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Configuration defaults to ServerConfig.xml (publish) and ClientConfig.xml (subscribe)
in the working directory. Use "configure" to write templates.
`
)

// Full standardized help menu (wraps option printer as well)
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	writeHelpMenu(os.Stdout, os.Args[0], fs, command, rootCmd)
}

func writeHelpMenu(w io.Writer, program string, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	curCmdSet, parents, found := findCommand(command, rootCmd)
	if !found {
		fmt.Fprintf(w, "Unknown command: %s\n", command)
		return
	}

	// Usage line, root name is implied by the program name
	usageParts := []string{program}
	for _, parent := range parents {
		if parent != rootCmd {
			usageParts = append(usageParts, parent.CommandName)
		}
	}
	if curCmdSet != rootCmd {
		usageParts = append(usageParts, curCmdSet.CommandName)
	}
	switch len(curCmdSet.ChildCommands) {
	case 0:
	case 1:
		usageParts = slices.AppendSeq(usageParts, maps.Keys(curCmdSet.ChildCommands))
	default:
		usageParts = append(usageParts, "[subcommand]")
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}
	fmt.Fprintf(w, "Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if curCmdSet == rootCmd {
		fmt.Fprintln(w, curCmdSet.Description)
		fmt.Fprintln(w, curCmdSet.FullDescription)
		fmt.Fprintln(w)
	} else if curCmdSet.FullDescription != "" {
		fmt.Fprintln(w, "  Description:")
		fmt.Fprintf(w, "    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		subNames := slices.Sorted(maps.Keys(curCmdSet.ChildCommands))
		maxLen := 0
		for _, name := range subNames {
			maxLen = max(maxLen, len(name))
		}

		fmt.Fprintf(w, "%sSubcommands:\n", strings.Repeat(" ", baseIndentSpaces))
		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Fprintf(w, "%s%s%s - %s\n", cmdIndent, name, padding, curCmdSet.ChildCommands[name].Description)
		}
		fmt.Fprintln(w)
	}

	writeFlagOptions(w, fs, baseIndentSpaces)

	if curCmdSet == rootCmd {
		fmt.Fprint(w, helpMenuTrailer)
	}
}

// Locates command in the tree (root, top level, or one level below)
func findCommand(command string, rootCmd *global.CommandSet) (cmdSet *global.CommandSet, parents []*global.CommandSet, found bool) {
	if command == "" || command == RootCLICommand {
		cmdSet, found = rootCmd, true
		return
	}
	if cmd, ok := rootCmd.ChildCommands[command]; ok {
		cmdSet, parents, found = cmd, []*global.CommandSet{rootCmd}, true
		return
	}
	for _, topName := range slices.Sorted(maps.Keys(rootCmd.ChildCommands)) {
		topCmd := rootCmd.ChildCommands[topName]
		if sub, ok := topCmd.ChildCommands[command]; ok {
			cmdSet, parents, found = sub, []*global.CommandSet{rootCmd, topCmd}, true
			return
		}
	}
	return
}

// Option line with short/long aliases merged (aliases share usage text)
type optInfo struct {
	names      []string
	usage      string
	defaultVal string
	hasShort   bool
}

// Custom printer to deduplicate short/long usages and indent automatically
func writeFlagOptions(w io.Writer, fs *flag.FlagSet, baseIndentSpaces int) {
	const shortLongArgJoiner string = ", " // like "  -t[, ]--test  Some usage text"
	const argToUsageSpaces int = 2         // like "  -t, --test[  ]Some usage text"

	byUsage := make(map[string]*optInfo)
	var opts []*optInfo
	fs.VisitAll(func(arg *flag.Flag) {
		name := "--" + arg.Name
		isShort := len(arg.Name) == 1
		if isShort {
			name = "-" + arg.Name
		}

		opt, seen := byUsage[arg.Usage]
		if !seen {
			opt = &optInfo{usage: arg.Usage, defaultVal: arg.DefValue}
			byUsage[arg.Usage] = opt
			opts = append(opts, opt)
		}
		opt.names = append(opt.names, name)
		opt.hasShort = opt.hasShort || isShort
	})

	// Short args before long args, then options ordered by first name
	for _, opt := range opts {
		slices.SortStableFunc(opt.names, func(a, b string) int { return len(a) - len(b) })
	}
	slices.SortFunc(opts, func(a, b *optInfo) int {
		return strings.Compare(strings.ToLower(a.names[0]), strings.ToLower(b.names[0]))
	})

	// Long-only options are shifted right by the width of "-x, "
	longOnlyOffset := len(shortLongArgJoiner) + 2
	leftWidth := func(opt *optInfo) (width int) {
		width = len(strings.Join(opt.names, shortLongArgJoiner))
		if !opt.hasShort {
			width += longOnlyOffset
		}
		return
	}

	maxLen := 0
	for _, opt := range opts {
		maxLen = max(maxLen, leftWidth(opt))
	}

	fmt.Fprintf(w, "%sOptions:\n", strings.Repeat(" ", baseIndentSpaces))
	for _, opt := range opts {
		indentSpaces := baseIndentSpaces
		if !opt.hasShort {
			indentSpaces += longOnlyOffset
		}
		padding := strings.Repeat(" ", maxLen-leftWidth(opt)+argToUsageSpaces)

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Fprintf(w, "%s%s%s%s\n", strings.Repeat(" ", indentSpaces), strings.Join(opt.names, shortLongArgJoiner), padding, desc)
	}
}
