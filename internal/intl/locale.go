package intl

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

var (
	ErrInvalidLocale   = errors.New("invalid locale identifier")
	ErrInvalidCurrency = errors.New("invalid or unsupported currency code")
	ErrInvalidStyle    = errors.New("invalid number format style")
)

const rootID = "root"

// maxChainDepth bounds every walk up the locale hierarchy. Real identifiers
// carry at most language, script, region and a couple of variants.
const maxChainDepth = 8

// Locale is a parsed locale identifier. The zero value is the root locale.
type Locale struct {
	tag language.Tag
}

// Root is the locale every fallback chain ends at.
var Root = Locale{tag: language.Und}

// fallbackLocale is used when the environment does not name a usable locale.
var fallbackLocale = Locale{tag: language.AmericanEnglish}

// ParseLocale accepts ICU style ("it_IT"), BCP 47 ("it-IT") and POSIX
// ("it_IT.UTF-8@euro") identifiers. "root" names the root locale.
// Well-formed but unknown subtags are accepted so that made up locales fall
// back to root data.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Locale{}, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}
	if strings.EqualFold(s, rootID) {
		return Root, nil
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, s, err)
		}
	}
	return Locale{tag: t}, nil
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

// DefaultLocale returns the platform locale taken from LC_ALL, LC_MONETARY
// or LANG, or en_US when none of them is usable.
func DefaultLocale() Locale {
	for _, k := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		v := os.Getenv(k)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if l, err := ParseLocale(v); err == nil && !l.IsRoot() {
			return l
		}
	}
	return fallbackLocale
}

func (l Locale) Tag() language.Tag { return l.tag }

func (l Locale) IsRoot() bool { return l.tag == language.Und }

// String renders the identifier ICU style, e.g. "it_IT", "zh_Hant_TW".
func (l Locale) String() string {
	if l.IsRoot() {
		return rootID
	}
	base, script, region := l.tag.Raw()
	parts := []string{base.String()}
	if script != (language.Script{}) {
		parts = append(parts, script.String())
	}
	if region != (language.Region{}) {
		parts = append(parts, region.String())
	}
	for _, v := range l.tag.Variants() {
		parts = append(parts, strings.ToUpper(v.String()))
	}
	return strings.Join(parts, "_")
}

// Parent strips the most specific subtag: it_IT -> it -> root.
// The boolean is false for the root locale.
func (l Locale) Parent() (Locale, bool) {
	if l.IsRoot() {
		return Locale{}, false
	}
	base, script, region := l.tag.Raw()
	vars := l.tag.Variants()

	parts := []any{base}
	switch {
	case len(vars) > 0:
		if script != (language.Script{}) {
			parts = append(parts, script)
		}
		if region != (language.Region{}) {
			parts = append(parts, region)
		}
		if len(vars) > 1 {
			parts = append(parts, vars[:len(vars)-1])
		}
	case region != (language.Region{}):
		if script != (language.Script{}) {
			parts = append(parts, script)
		}
	case script != (language.Script{}):
	default:
		return Root, true
	}

	t, err := language.Compose(parts...)
	if err != nil || t == l.tag {
		return Root, true
	}
	return Locale{tag: t}, true
}

// Chain lists l and its ancestors, most specific first, ending at root.
func (l Locale) Chain() []Locale {
	out := make([]Locale, 0, 4)
	cur, ok := l, true
	for i := 0; ok && i < maxChainDepth; i++ {
		out = append(out, cur)
		cur, ok = cur.Parent()
	}
	if !out[len(out)-1].IsRoot() {
		out = append(out, Root)
	}
	return out
}

// isLanguageLevel reports whether l carries a base language only.
func (l Locale) isLanguageLevel() bool {
	if l.IsRoot() {
		return false
	}
	p, ok := l.Parent()
	return ok && p.IsRoot()
}
