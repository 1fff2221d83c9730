package subtext

import (
	"sort"
	"strings"
)

// Redact replaces every occurrence of each replacer's value in text with
// "<key>", producing a value-safe string. It needs no access to the variable
// map the replacers came from, so it is safe to call from logging paths that
// must not hold secrets. Text containing none of the values passes through
// unchanged.
func Redact(text string, replacers Replacers) string {
	return replacers.Redact(text)
}

// Redact masks each replacer's value in text with "<key>". Entries are
// processed longest value first so that a value which is a substring of
// another is never masked out from under it; recorded order breaks length
// ties. Entries with empty values are skipped.
func (rs Replacers) Redact(text string) string {
	ordered := make(Replacers, len(rs))
	copy(ordered, rs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Value) > len(ordered[j].Value)
	})

	for _, r := range ordered {
		if r.Value == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Value, "<"+r.Key+">")
	}
	return text
}
