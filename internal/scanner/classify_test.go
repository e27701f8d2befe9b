package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuli/dirlist/internal/model"
)

func lstatClassify(path string) (model.Entry, error) {
	st, err := lstat(path)
	if err != nil {
		return model.Entry{}, err
	}
	return classify(path, st), nil
}

func TestClassify(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	dir := filepath.Join(root, "dir")
	fileLink := filepath.Join(root, "file-link")
	dirLink := filepath.Join(root, "dir-link")
	dangling := filepath.Join(root, "dangling")

	writeFile(t, file)
	mkdir(t, dir)
	symlink(t, "file.txt", fileLink)
	symlink(t, "dir", dirLink)
	symlink(t, "nowhere", dangling)

	tests := []struct {
		path string
		want model.Kind
	}{
		{file, model.File},
		{dir, model.Directory},
		{fileLink, model.Symlink},
		{dirLink, model.Symlink},
		{dangling, model.Symlink},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			e, err := lstatClassify(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.path, e.Path)
			assert.Equal(t, tt.want, e.Kind)
		})
	}
}

func TestClassifyMissing(t *testing.T) {
	_, err := lstatClassify(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJoinPath(t *testing.T) {
	sep := string(os.PathSeparator)

	assert.Equal(t, "."+sep+"a", joinPath(".", "a"))
	assert.Equal(t, "dir"+sep+"a", joinPath("dir", "a"))
	assert.Equal(t, "dir/a", joinPath("dir/", "a"))
	assert.Equal(t, sep+"etc", joinPath(sep, "etc"))
}
