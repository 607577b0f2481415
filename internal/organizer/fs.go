package organizer

import (
	"os"

	"tidy/internal/fileutil"
)

// FileSystem is the set of mutations and probes a run performs. Tests swap it
// to force failures that permission bits cannot produce reliably.
type FileSystem interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	Move(src, dst string) error
}

// OSFileSystem is the FileSystem backed by the operating system.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

func (OSFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFileSystem) Remove(name string) error { return os.Remove(name) }

func (OSFileSystem) Move(src, dst string) error { return fileutil.Move(src, dst) }
