// Package constants defines shared constant values.
package constants

// AppName is the project identifier used in logs and metadata.
const AppName = "covstat"

// CommandName is the primary CLI command name.
const CommandName = "covstat"

// ProfileFileName is the coverage profile read from the working directory.
const ProfileFileName = "coverage_new.out"

// ModulePrefix is stripped from profile file names to produce repo-relative paths.
const ModulePrefix = "github.com/khicago/repoll/"

// CoverageThreshold is the minimum overall percentage for a passing verdict.
const CoverageThreshold = 97.0

// PreviewLimit is the number of data lines echoed by the preview section.
const PreviewLimit = 5
