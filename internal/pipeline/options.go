package pipeline

import "github.com/khicago/covstat/internal/constants"

// Options selects one configuration of the shared report pipeline.
type Options struct {
	ProfilePath  string
	ModulePrefix string
	Threshold    float64
	PerFile      bool
	Preview      bool
	PreviewLimit int
	// MissingProfileFatal returns *profile.ProfileNotFoundError instead of
	// printing a notice and succeeding.
	MissingProfileFatal bool
	Quiet               bool
}

// AnalyzeOptions prints the per-file breakdown and treats a missing profile as a notice.
func AnalyzeOptions() Options {
	return Options{
		ProfilePath:  constants.ProfileFileName,
		ModulePrefix: constants.ModulePrefix,
		Threshold:    constants.CoverageThreshold,
		PerFile:      true,
	}
}

// SimpleOptions prints line counts and a preview, and fails on a missing profile.
func SimpleOptions() Options {
	return Options{
		ProfilePath:         constants.ProfileFileName,
		ModulePrefix:        constants.ModulePrefix,
		Threshold:           constants.CoverageThreshold,
		Preview:             true,
		PreviewLimit:        constants.PreviewLimit,
		MissingProfileFatal: true,
	}
}
