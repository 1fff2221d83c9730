package subtext

import "fmt"

// Style selects the delimiter pair recognized during interpolation.
type Style int

const (
	// DoubleBrackets uses "[[" and "]]" as delimiters.
	DoubleBrackets Style = iota
	// DoubleCurlyBraces uses "{{" and "}}" as delimiters.
	DoubleCurlyBraces
)

// delims returns the opener and closer sequences for the style. Both are two
// identical characters; unknown values fall back to DoubleBrackets, the zero
// value.
func (s Style) delims() (opener, closer string) {
	if s == DoubleCurlyBraces {
		return "{{", "}}"
	}
	return "[[", "]]"
}

// String returns the flag-friendly name of the style.
func (s Style) String() string {
	if s == DoubleCurlyBraces {
		return "curly"
	}
	return "brackets"
}

// ParseStyle converts a flag-friendly name into a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "brackets":
		return DoubleBrackets, nil
	case "curly":
		return DoubleCurlyBraces, nil
	default:
		return DoubleBrackets, fmt.Errorf("unknown style: %s (want brackets or curly)", name)
	}
}
