package organizer

import "tidy/internal/categories"

// Outcome is the per-file result of a run.
type Outcome string

const (
	OutcomeMoved       Outcome = "moved"
	OutcomeSkipped     Outcome = "skipped-exists"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeError       Outcome = "error"
	OutcomeDryRun      Outcome = "dry-run"
)

// Result describes the decision taken for one file.
type Result struct {
	Name        string            `json:"name"`
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	Category    string            `json:"category"`
	Extension   string            `json:"extension,omitempty"`
	Resolution  categories.Reason `json:"resolution"`
	Outcome     Outcome           `json:"outcome"`
	// Reason is the human-readable cause of an OutcomeError.
	Reason string `json:"reason,omitempty"`
	// Err carries the classified error (services.ErrRelocation) for callers
	// that need errors.Is.
	Err error `json:"-"`
}

// Summary counts results by outcome.
type Summary struct {
	Moved       int `json:"moved"`
	Skipped     int `json:"skipped"`
	Overwritten int `json:"overwritten"`
	Failed      int `json:"failed"`
	Previewed   int `json:"previewed"`
}

// Total returns the number of files the run decided on.
func (s Summary) Total() int {
	return s.Moved + s.Skipped + s.Overwritten + s.Failed + s.Previewed
}

func (s *Summary) add(outcome Outcome) {
	switch outcome {
	case OutcomeMoved:
		s.Moved++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeOverwritten:
		s.Overwritten++
	case OutcomeError:
		s.Failed++
	case OutcomeDryRun:
		s.Previewed++
	}
}

// Report is the aggregated outcome of one run. It is not persisted.
type Report struct {
	Root    string   `json:"root"`
	RunID   string   `json:"run_id,omitempty"`
	DryRun  bool     `json:"dry_run"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Empty reports whether the target held no files to organize.
func (r *Report) Empty() bool {
	return r == nil || len(r.Results) == 0
}

func (r *Report) record(result Result) {
	r.Results = append(r.Results, result)
	r.Summary.add(result.Outcome)
}
