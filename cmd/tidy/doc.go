// Package main hosts the tidy CLI entrypoint and command graph.
//
// Running tidy with an optional directory sorts its top-level files into
// category folders. Subcommands list the category table, check the target
// and log directories, and scaffold or validate the configuration file. The
// package centralizes configuration resolution and logger setup so commands
// can focus on rendering.
//
// Keep this package lean: organizing behaviour lives in internal/organizer and
// is only surfaced here.
package main
