package organizer

import (
	"errors"
	"io/fs"
	"log/slog"

	"tidy/internal/logging"
	"tidy/internal/services"
)

const categoryDirPerm = 0o755

// relocate performs the live move for one classified file and records the
// outcome on result.
func (o *Organizer) relocate(logger *slog.Logger, categoryDir string, result *Result, overwrite bool) {
	if err := o.fs.MkdirAll(categoryDir, categoryDirPerm); err != nil {
		o.fail(logger, result, "ensure category dir", "Failed to create category directory", err)
		return
	}

	info, err := o.fs.Lstat(result.Destination)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := o.fs.Move(result.Source, result.Destination); err != nil {
			o.fail(logger, result, "move file", "Failed to move file", err)
			return
		}
		result.Outcome = OutcomeMoved
		logger.Info("file moved", logging.String("destination", result.Destination))
	case err != nil:
		o.fail(logger, result, "inspect destination", "Unable to inspect destination", err)
	case !overwrite:
		result.Outcome = OutcomeSkipped
		logger.Info(
			"destination exists; file skipped",
			logging.Args(append(
				logging.DecisionAttrs("conflict", "skip", "destination exists"),
				logging.String("destination", result.Destination),
			)...)...,
		)
	case info.IsDir():
		o.fail(logger, result, "replace destination", "Destination is a directory", errDestinationIsDir)
	default:
		if err := o.fs.Remove(result.Destination); err != nil {
			o.fail(logger, result, "replace destination", "Failed to remove existing destination", err)
			return
		}
		if err := o.fs.Move(result.Source, result.Destination); err != nil {
			o.fail(logger, result, "move file", "Failed to move file after removing destination", err)
			return
		}
		result.Outcome = OutcomeOverwritten
		logger.Info(
			"destination overwritten",
			logging.Args(append(
				logging.DecisionAttrs("conflict", "overwrite", "overwrite requested"),
				logging.String("destination", result.Destination),
			)...)...,
		)
	}
}

var errDestinationIsDir = errors.New("destination is a directory")

func (o *Organizer) fail(logger *slog.Logger, result *Result, operation, message string, cause error) {
	result.Outcome = OutcomeError
	result.Reason = cause.Error()
	result.Err = services.Wrap(services.ErrRelocation, stageOrganizing, operation, message, cause)
	logging.WarnWithContext(
		logger,
		"file relocation failed",
		"relocation_failed",
		logging.Error(result.Err),
		logging.String("operation", operation),
		logging.String("destination", result.Destination),
		logging.String(logging.FieldErrorHint, "check permissions and free space under the target directory"),
		logging.String(logging.FieldImpact, "file left in place; remaining files continue"),
	)
}
