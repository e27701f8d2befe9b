//go:build unix

package scanner

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// fileStatus holds the type bits of an lstat result
type fileStatus struct {
	mode uint32
}

// lstat queries path without dereferencing a trailing symlink
func lstat(path string) (fileStatus, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return fileStatus{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}
	return fileStatus{mode: uint32(st.Mode) & unix.S_IFMT}, nil
}

func (s fileStatus) isDir() bool     { return s.mode == unix.S_IFDIR }
func (s fileStatus) isSymlink() bool { return s.mode == unix.S_IFLNK }
func (s fileStatus) isRegular() bool { return s.mode == unix.S_IFREG }
