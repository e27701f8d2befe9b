package scanner

import (
	"os"
	"strings"

	"github.com/samuli/dirlist/internal/model"
)

// classify turns a successful status query into an entry.
// Directory is tested first, then symlink, then regular file.
func classify(path string, st fileStatus) model.Entry {
	e := model.Entry{Path: path, Kind: model.Other}
	switch {
	case st.isDir():
		e.Kind = model.Directory
	case st.isSymlink():
		e.Kind = model.Symlink
	case st.isRegular():
		e.Kind = model.File
	}
	return e
}

// joinPath appends name to dir with a single separator. dir is not
// cleaned, so "." stays a "./" prefix.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
