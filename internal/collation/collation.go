// Package collation orders paths by the collation rules of a locale.
package collation

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/samuli/dirlist/internal/model"
)

// localeVars are consulted in POSIX precedence order
var localeVars = []string{"LC_ALL", "LC_COLLATE", "LANG"}

// Collator compares strings using a locale's collation order.
// It is not safe for concurrent use.
type Collator struct {
	tag language.Tag
	col *collate.Collator
}

// New creates a collator for a POSIX-style locale name such as
// "en_US.UTF-8" or a BCP 47 tag such as "sv-SE". "", "C" and "POSIX"
// select the root collation.
func New(locale string) (*Collator, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return &Collator{tag: tag, col: collate.New(tag)}, nil
}

// ParseLocale converts a locale name into a language tag
func ParseLocale(locale string) (language.Tag, error) {
	name := strings.TrimSpace(locale)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, errors.Wrapf(err, "invalid locale %q", locale)
	}
	return tag, nil
}

// Resolve picks the locale to collate with: override when set, otherwise
// the first non-empty of LC_ALL, LC_COLLATE and LANG.
func Resolve(override string, getenv func(string) string) string {
	if override != "" {
		return override
	}
	for _, v := range localeVars {
		if val := getenv(v); val != "" {
			return val
		}
	}
	return ""
}

// Tag returns the language the collator was built for
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Compare returns a negative number if a sorts before b, zero if they are
// identical and a positive number otherwise. Strings the locale considers
// equal are ordered by their bytes.
func (c *Collator) Compare(a, b string) int {
	if r := c.col.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Sort orders rs by path in place
func (c *Collator) Sort(rs *model.ResultSet) {
	rs.SortByPath(c.Compare)
}
