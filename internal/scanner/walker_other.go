//go:build !unix

package scanner

import (
	"io/fs"
	"os"
)

// fileStatus holds the mode of an lstat result
type fileStatus struct {
	mode fs.FileMode
}

// lstat queries path without dereferencing a trailing symlink
func lstat(path string) (fileStatus, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return fileStatus{}, err
	}
	return fileStatus{mode: fi.Mode()}, nil
}

func (s fileStatus) isDir() bool     { return s.mode.IsDir() }
func (s fileStatus) isSymlink() bool { return s.mode&fs.ModeSymlink != 0 }
func (s fileStatus) isRegular() bool { return s.mode.IsRegular() }
