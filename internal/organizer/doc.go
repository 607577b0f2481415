// Package organizer sorts the files at the top level of a directory into
// category folders named after their extension.
//
// A run snapshots the immediate regular files of the target, classifies each
// name through a categories.Table, and either records the would-be mapping
// (dry run) or relocates the file under <target>/<Category>/<name>. Existing
// destinations are skipped unless overwriting is requested. Per-file failures
// are recorded on the report and never abort the run; only an unusable target
// directory does.
package organizer
