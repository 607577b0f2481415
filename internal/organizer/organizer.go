package organizer

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"tidy/internal/categories"
	"tidy/internal/logging"
	"tidy/internal/services"
)

const (
	stageOrganizing = "organizing"
	stagePreview    = "preview"
)

// Options controls a single run. The zero value performs a live run that
// skips existing destinations.
type Options struct {
	DryRun    bool
	Overwrite bool
	// OnResult, when set, receives each result as soon as it is decided.
	OnResult func(Result)
}

// Organizer sorts the top-level files of a directory into category folders.
type Organizer struct {
	table  *categories.Table
	logger *slog.Logger
	fs     FileSystem
}

// New constructs an organizer over the operating system filesystem.
func New(table *categories.Table, logger *slog.Logger) *Organizer {
	return NewWithDependencies(table, logger, OSFileSystem{})
}

// NewWithDependencies allows injecting collaborators (used in tests).
func NewWithDependencies(table *categories.Table, logger *slog.Logger, fsys FileSystem) *Organizer {
	if table == nil {
		table = categories.Build(categories.Default())
	}
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &Organizer{
		table:  table,
		logger: logging.NewComponentLogger(logger, "organizer"),
		fs:     fsys,
	}
}

// Organize classifies and relocates every regular file directly inside
// targetDir. It returns an error marked services.ErrValidation or
// services.ErrDirectory when the target cannot be used; per-file failures are
// recorded on the report instead.
func (o *Organizer) Organize(ctx context.Context, targetDir string, opts Options) (*Report, error) {
	stage := stageOrganizing
	if opts.DryRun {
		stage = stagePreview
	}
	ctx = services.WithStage(ctx, stage)
	logger := logging.WithContext(ctx, o.logger)

	root, err := o.resolveRoot(stage, targetDir)
	if err != nil {
		return nil, err
	}

	names, err := o.listFiles(stage, root)
	if err != nil {
		return nil, err
	}

	report := &Report{Root: root, DryRun: opts.DryRun, Results: make([]Result, 0, len(names))}
	if id, ok := services.RunIDFromContext(ctx); ok {
		report.RunID = id
	}

	logger.Info(
		"organize run started",
		logging.String("root", root),
		logging.Int("file_count", len(names)),
		logging.Bool("dry_run", opts.DryRun),
		logging.Bool("overwrite", opts.Overwrite),
	)
	if len(names) == 0 {
		logger.Info("nothing to organize", logging.String("root", root))
		return report, nil
	}

	for _, name := range names {
		result := o.decide(logger, root, name, opts)
		report.record(result)
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
	}

	logger.Info(
		"organize run completed",
		logging.String("root", root),
		logging.Int("moved", report.Summary.Moved),
		logging.Int("skipped", report.Summary.Skipped),
		logging.Int("overwritten", report.Summary.Overwritten),
		logging.Int("failed", report.Summary.Failed),
		logging.Int("previewed", report.Summary.Previewed),
	)
	return report, nil
}

func (o *Organizer) resolveRoot(stage, targetDir string) (string, error) {
	if targetDir == "" {
		return "", services.Wrap(
			services.ErrValidation,
			stage,
			"resolve target",
			"No target directory given; pass a directory or set organize.target_dir in config.toml",
			nil,
		)
	}
	root, err := filepath.Abs(targetDir)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, stage, "resolve target", "Unable to resolve target path", err)
	}
	root = filepath.Clean(root)

	info, err := o.fs.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", services.Wrap(services.ErrDirectory, stage, "inspect target", "Target directory does not exist: "+root, err)
	case err != nil:
		return "", services.Wrap(services.ErrDirectory, stage, "inspect target", "Unable to inspect target directory: "+root, err)
	case !info.IsDir():
		return "", services.Wrap(services.ErrDirectory, stage, "inspect target", "Target is not a directory: "+root, nil)
	}
	return root, nil
}

// listFiles returns the names of the regular files directly inside root,
// sorted by name. Directories, symlinks, and special files are left alone.
func (o *Organizer) listFiles(stage, root string) ([]string, error) {
	entries, err := o.fs.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectory, stage, "list target", "Unable to read target directory: "+root, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (o *Organizer) decide(logger *slog.Logger, root, name string, opts Options) Result {
	resolution := o.table.Classify(name)
	categoryDir := filepath.Join(root, resolution.Category)
	result := Result{
		Name:        name,
		Source:      filepath.Join(root, name),
		Destination: filepath.Join(categoryDir, name),
		Category:    resolution.Category,
		Extension:   resolution.Extension,
		Resolution:  resolution.Reason,
	}

	fileLogger := logger.With(logging.String("file", name))
	fileLogger.Debug(
		"file classified",
		logging.Args(append(
			logging.DecisionAttrs("classification", resolution.Category, string(resolution.Reason)),
			logging.String("extension", resolution.Extension),
		)...)...,
	)

	if opts.DryRun {
		result.Outcome = OutcomeDryRun
		return result
	}

	o.relocate(fileLogger, categoryDir, &result, opts.Overwrite)
	return result
}
