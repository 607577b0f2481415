package preflight

import "tidy/internal/config"

// Problem classifies why a check failed.
type Problem string

const (
	ProblemNone         Problem = ""
	ProblemUnset        Problem = "unset"
	ProblemMissing      Problem = "missing"
	ProblemNotDirectory Problem = "not_directory"
	ProblemPermissions  Problem = "permissions"
	ProblemStat         Problem = "stat"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Problem Problem
	Detail  string
}

const (
	NameTarget = "Target directory"
	NameLogDir = "Log directory"
)

// RunAll executes the filesystem checks for a run. target overrides the
// configured target directory when non-empty. The log directory is only
// checked when file logging is configured.
func RunAll(cfg *config.Config, target string) []Result {
	if cfg == nil {
		return nil
	}
	if target == "" {
		target = cfg.Organize.TargetDir
	}

	results := []Result{CheckDirectoryAccess(NameTarget, target)}
	if dir := cfg.Logging.Dir; dir != "" {
		results = append(results, CheckLogDirectory(NameLogDir, dir))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
