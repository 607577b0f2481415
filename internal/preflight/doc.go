// Package preflight provides readiness checks for the filesystem paths tidy
// depends on.
//
// These checks run in two contexts:
//   - A live organize run checks the target before moving anything and logs
//     a warning when permissions look insufficient. The run still proceeds
//     and any real failure is recorded per file.
//   - The CLI "tidy check" command renders every result as a status line.
package preflight
