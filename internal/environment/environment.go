// Package environment reads runtime environment configuration.
package environment

import (
	"os"
)

const testModeVariable = "COVSTAT_TEST"

func AppVersion() string {
	return "REPL_VERSION"
}

// IsTestMode reports whether user-facing strings should be rendered as raw keys.
func IsTestMode() bool {
	_, present := os.LookupEnv(testModeVariable)
	return present
}
