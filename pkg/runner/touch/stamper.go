package touch

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Stamper is the filesystem seen by Touch.
type Stamper interface {
	// Exists reports whether path names an existing file or directory.
	Exists(path string) (bool, error)
	// Create makes a new empty file and fails if path already exists.
	Create(path string) error
	// Times returns the access and modification times of path.
	Times(path string) (atime, mtime time.Time, err error)
	// SetTimes updates path; a zero time leaves that timestamp unchanged.
	SetTimes(path string, atime, mtime time.Time) error
}

// OS is the Stamper backed by the local filesystem.
type OS struct{}

var _ Stamper = OS{}

func (OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	}
	return false, err
}

func (OS) Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}
	return f.Close()
}

func (OS) Times(path string) (time.Time, time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	atime, err := accessTime(path, fi)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "access time")
	}
	return atime, fi.ModTime(), nil
}

func (OS) SetTimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}
