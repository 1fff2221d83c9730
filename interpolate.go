package subtext

import "strings"

// Replacer records one substitution made during interpolation: the placeholder
// key and the value that was written in its place.
type Replacer struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Replacers is the ordered list of substitutions from one interpolation call,
// in order of first appearance in the input, with at most one entry per key.
type Replacers []Replacer

func (rs Replacers) hasKey(key string) bool {
	for _, r := range rs {
		if r.Key == key {
			return true
		}
	}
	return false
}

// Interpolator configures placeholder interpolation. The zero value uses
// DoubleBrackets and fails on unknown variables.
type Interpolator struct {
	Style Style

	// KeepUnresolved emits placeholders with unknown keys back into the
	// output verbatim instead of failing. Useful for multi-phase rendering
	// where a later pass supplies the remaining variables.
	KeepUnresolved bool
}

// Interpolate replaces every placeholder in input with its value from vars and
// returns the rendered string together with the replacers for the values that
// were substituted. It fails with *UndefinedVariableError on a key missing
// from vars and *UnterminatedPlaceholderError on an opener with no closer; on
// failure the returned string is empty and the replacers are nil.
func Interpolate(input string, vars map[string]string, style Style) (string, Replacers, error) {
	return Interpolator{Style: style}.Run(input, vars)
}

// Run interpolates input against vars in a single left-to-right scan.
//
// Exactly two opener characters begin a placeholder, which ends at the first
// closer sequence. The inner text is trimmed of surrounding whitespace to form
// the lookup key. A run of three opener characters escapes interpolation and
// renders as one literal opener; runs of three closer characters outside a
// placeholder render as one literal closer. Longer delimiter runs are consumed
// by the same rules, left to right. Substituted values are never re-scanned.
func (in Interpolator) Run(input string, vars map[string]string) (string, Replacers, error) {
	opener, closer := in.Style.delims()
	var out strings.Builder
	out.Grow(len(input))

	var replacers Replacers
	i := 0
	for i < len(input) {
		c := input[i]
		switch c {
		case opener[0]:
			run := runLength(input[i:], c)
			switch {
			case run >= 3:
				// Escape: three openers collapse to one literal delimiter.
				out.WriteString(opener)
				i += 3
			case run == 2:
				end := strings.Index(input[i+2:], closer)
				if end < 0 {
					return "", nil, &UnterminatedPlaceholderError{Position: i}
				}
				inner := input[i+2 : i+2+end]
				key := strings.TrimSpace(inner)
				value, ok := vars[key]
				switch {
				case ok:
					out.WriteString(value)
					if !replacers.hasKey(key) {
						replacers = append(replacers, Replacer{Key: key, Value: value})
					}
				case in.KeepUnresolved:
					out.WriteString(opener)
					out.WriteString(inner)
					out.WriteString(closer)
				default:
					return "", nil, &UndefinedVariableError{Key: key}
				}
				i += 2 + end + 2
			default:
				// A lone opener character is not special.
				out.WriteByte(c)
				i++
			}
		case closer[0]:
			if runLength(input[i:], c) >= 3 {
				// Symmetric escape on the closer side.
				out.WriteString(closer)
				i += 3
			} else {
				// Closers outside a placeholder are ordinary text.
				out.WriteByte(c)
				i++
			}
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String(), replacers, nil
}

// runLength counts the leading consecutive occurrences of ch in s.
func runLength(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}
