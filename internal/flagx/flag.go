// Package flagx picks flags out of a command line that several parsers share:
// the config-file flag is read before the binary's own flag set, and the
// client's subcommand words sit between flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// walk calls onFlag with each occurrence of a flag in names together with
// the arguments it spans, and onOther with every other argument. A flag
// takes the next argument as its value unless that argument starts with "-".
// "--" ends flag handling and is not reported.
func walk(args []string, names []string, onFlag func(span []string), onOther func(arg string)) {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			for _, rest := range args[i+1:] {
				onOther(rest)
			}
			return
		}

		name, _, inline := strings.Cut(arg, "=")
		switch {
		case inline && strings.HasPrefix(arg, "-") && known[name]:
			onFlag(args[i : i+1])
		case known[arg] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			onFlag(args[i : i+2])
			i++
		case known[arg]:
			onFlag(args[i : i+1])
		default:
			onOther(arg)
		}
	}
}

// FilterArgs keeps only the flags in allowed and their values, in order.
// Both "-f value" and "-f=value" are recognised.
func FilterArgs(args []string, allowed []string) []string {
	kept := make([]string, 0, len(args))
	walk(args, allowed, func(span []string) { kept = append(kept, span...) }, func(string) {})
	return kept
}

// Positional returns what FilterArgs would drop for valueFlags: subcommand
// words, their operands and any flag not listed.
func Positional(args []string, valueFlags []string) []string {
	rest := make([]string, 0, len(args))
	walk(args, valueFlags, func([]string) {}, func(arg string) { rest = append(rest, arg) })
	return rest
}

// ConfigFile returns the path given with -c or -config, or "" when neither
// is present. The last occurrence wins.
func ConfigFile(args []string) string {
	var path string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))
	return path
}
