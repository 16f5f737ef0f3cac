// Package flagx lets independent components parse only the command-line
// flags they own, so the config loader can share os.Args with cobra.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnvVar names a config file when neither -c nor -config is given.
const ConfigEnvVar = "RECIPESHARE_CONFIG"

// FilterArgs returns the subset of args made of allowed flags and their
// values. Both "-f value" and "-f=value" forms are recognised; a value is
// only consumed when the next argument does not itself look like a flag.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := allowed[name]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[arg]; !keep {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath extracts the config file path from -c / -config in args,
// falling back to the ConfigEnvVar environment variable. An empty string
// means no config file was requested.
func ConfigPath(args []string, lookupEnv func(string) (string, bool)) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	if path == "" && lookupEnv != nil {
		if v, ok := lookupEnv(ConfigEnvVar); ok {
			path = strings.TrimSpace(v)
		}
	}
	return path
}

// ConfigFileFlag is ConfigPath applied to the process arguments and environment.
func ConfigFileFlag() string {
	return ConfigPath(os.Args[1:], os.LookupEnv)
}
