//go:build windows

package touch

import (
	"os"
	"syscall"
	"time"
)

func accessTime(_ string, fi os.FileInfo) (time.Time, error) {
	d, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return fi.ModTime(), nil
	}
	return time.Unix(0, d.LastAccessTime.Nanoseconds()), nil
}
