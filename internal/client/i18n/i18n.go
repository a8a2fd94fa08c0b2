// Package i18n resolves display strings for the supported languages.
//
// Lookups never fail: a missing key or an unsupported language resolves to
// the key itself, so the UI always has something to show.
package i18n

import "golang.org/x/text/language"

// codes lists the supported language codes, index-aligned with supported.
var codes = []string{"en", "es", "fr", "ht"}

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.MustParse("ht"),
}

var matcher = language.NewMatcher(supported)

// Resolve returns the display string for key in the given language.
// Unknown keys come back verbatim; so does every key for a language
// outside the supported set. Safe for concurrent use.
func Resolve(lang, key string) string {
	table, ok := tableFor(lang)
	if !ok {
		return key
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Supported reports whether code maps onto one of the shipped tables.
func Supported(code string) bool {
	_, ok := tableFor(code)
	return ok
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// tableFor matches a user-supplied code against the supported set.
// Region variants like "en-US" land on their base table; anything the
// matcher is not highly confident about is treated as unsupported.
func tableFor(code string) (map[string]string, bool) {
	if t, ok := tables[code]; ok {
		return t, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return nil, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return nil, false
	}
	return tables[codes[idx]], true
}
