// Package flagx holds command-line helpers shared by the server binaries.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigFileEnv names the environment variable consulted when no -c/-config
// flag is given.
const ConfigFileEnv = "ELECTRO_CONFIG"

// FilterArgs keeps only the arguments that belong to allowedFlags, so a
// FlagSet that knows a subset of the flags can parse os.Args without failing
// on the rest.
//
// Accepted forms are "-f value" and "-f=value". A value is only consumed when
// the next argument does not start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, _, hasValue := strings.Cut(args[i], "=")
		if !strings.HasPrefix(name, "-") || !allowed[name] {
			continue
		}
		out = append(out, args[i])
		if hasValue {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// JsonConfigFlags returns the JSON config file path given by -c or -config.
// When neither flag is present the ELECTRO_CONFIG environment variable is
// used. An empty result means no file should be loaded.
func JsonConfigFlags() string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "path to config file")
	fs.StringVar(&config, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	if config == "" {
		config = os.Getenv(ConfigFileEnv)
	}
	return config
}
