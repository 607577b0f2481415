// Package services defines shared utilities consumed by the organizer and the
// CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper that separate fatal
//     directory and configuration failures from per-file relocation failures.
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across commands.
package services
