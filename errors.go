package subtext

import "fmt"

// UnterminatedPlaceholderError reports an opener with no matching closer
// before the end of the input.
type UnterminatedPlaceholderError struct {
	// Position is the byte offset of the opening delimiter.
	Position int
}

func (e *UnterminatedPlaceholderError) Error() string {
	return fmt.Sprintf("no closing delimiter for placeholder at byte %d", e.Position)
}

// UndefinedVariableError reports a well-formed placeholder whose key is not
// present in the variable map.
type UndefinedVariableError struct {
	Key string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("no value found for variable %q", e.Key)
}
