package collation

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/samuli/dirlist/internal/model"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.Und},
		{"C", language.Und},
		{"POSIX", language.Und},
		{"C.UTF-8", language.Und},
		{"en_US.UTF-8", language.AmericanEnglish},
		{"de_DE@euro", language.MustParse("de-DE")},
		{"sv-SE", language.MustParse("sv-SE")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestParseLocaleInvalid(t *testing.T) {
	_, err := ParseLocale("not a locale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestResolve(t *testing.T) {
	env := map[string]string{"LANG": "de_DE.UTF-8", "LC_COLLATE": "sv_SE.UTF-8"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, "fr_FR", Resolve("fr_FR", getenv))
	assert.Equal(t, "sv_SE.UTF-8", Resolve("", getenv))

	env["LC_ALL"] = "en_GB.UTF-8"
	assert.Equal(t, "en_GB.UTF-8", Resolve("", getenv))

	assert.Equal(t, "", Resolve("", func(string) string { return "" }))
}

func TestCompareIsNotByteOrder(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	// byte order puts uppercase first
	assert.Positive(t, strings.Compare("a", "B"))
	assert.Negative(t, c.Compare("a", "B"))
	assert.Negative(t, c.Compare("root/a", "root/b.txt"))
	assert.Zero(t, c.Compare("root/a", "root/a"))
}

func TestCompareFollowsLocale(t *testing.T) {
	en, err := New("en_US.UTF-8")
	require.NoError(t, err)
	sv, err := New("sv_SE.UTF-8")
	require.NoError(t, err)

	assert.Negative(t, en.Compare("ä", "z"))
	assert.Positive(t, sv.Compare("ä", "z"))
}

func TestSortScenarios(t *testing.T) {
	c, err := New("en_US")
	require.NoError(t, err)

	rs := model.NewResultSet()
	rs.Append(model.Entry{Path: "root/b.txt", Kind: model.File})
	rs.Append(model.Entry{Path: "root/a", Kind: model.Symlink})
	c.Sort(rs)
	assert.Equal(t, []string{"root/a", "root/b.txt"}, rs.Paths())

	rs = model.NewResultSet()
	rs.Append(model.Entry{Path: "root/sub/leaf.txt", Kind: model.File})
	rs.Append(model.Entry{Path: "root/sub", Kind: model.Directory})
	c.Sort(rs)
	assert.Equal(t, []string{"root/sub", "root/sub/leaf.txt"}, rs.Paths())
}

func TestSortIsIdempotentAndTotal(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	paths := []string{"Zeta", "alpha", "Alpha", "beta", "ä", "a.b", "a-b", "_x", "10", "9", "éclair", "eclair"}
	rs := model.NewResultSet()
	for _, p := range paths {
		rs.Append(model.Entry{Path: p, Kind: model.File})
	}

	c.Sort(rs)
	first := rs.Paths()
	require.Len(t, first, len(paths))

	for i := 1; i < len(first); i++ {
		assert.Negative(t, c.Compare(first[i-1], first[i]), "%q before %q", first[i-1], first[i])
	}
	assert.True(t, sort.SliceIsSorted(first, func(i, j int) bool { return c.Compare(first[i], first[j]) < 0 }))

	c.Sort(rs)
	assert.Equal(t, first, rs.Paths())
}
