// Package fileutil holds the filesystem primitives the organizer relies on:
// a move that survives cross-device renames and the verified copy behind it.
package fileutil
