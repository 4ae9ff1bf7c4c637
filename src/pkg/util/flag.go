// Package util holds the command-line helpers shared by the stat-scanner tools.
package util

import (
	"flag"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

type requiredFlag struct {
	value   *string
	cliName string
}

// registration order, so missing flags are reported the way they were declared
var requiredFlags []requiredFlag

// RequiredFlag marks a string flag as mandatory. "dir", "-dir" and "--dir" all print as "--dir".
func RequiredFlag(flagPointer *string, cliName string) {
	requiredFlags = append(requiredFlags, requiredFlag{value: flagPointer, cliName: normalizeFlagName(cliName)})
}

func normalizeFlagName(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "--") {
		return s
	}
	if strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return "--" + s
}

// MissingFlags returns the required flags that are unset or blank, in registration order.
func MissingFlags() (missing []string) {
	for _, required := range requiredFlags {
		if required.value == nil || strings.TrimSpace(*required.value) == "" {
			missing = append(missing, required.cliName)
		}
	}
	return missing
}

// EnsureFlags logs every missing required flag, prints usage and exits(1) if any were missing.
func EnsureFlags() {
	missing := MissingFlags()
	if len(missing) == 0 {
		return
	}
	for _, cliName := range missing {
		tl.Log(tl.Warning, palette.YellowBold, "%s parameter is %s", cliName, "required")
	}
	flag.Usage()
	os.Exit(1)
}
