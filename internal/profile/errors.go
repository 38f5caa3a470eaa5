package profile

import "fmt"

type ProfileNotFoundError struct {
	Path string
	Err  error
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("Coverage profile not found: %s", e.Path)
}

func (e *ProfileNotFoundError) Unwrap() error {
	return e.Err
}

func (e *ProfileNotFoundError) Is(target error) bool {
	t, ok := target.(*ProfileNotFoundError)
	if !ok {
		return false
	}
	return e.Path == t.Path
}

// MalformedCountError reports a coverage count token that is not a non-negative integer.
// Line is the 1-based line number in the profile, counting the header, or 0 when unknown.
type MalformedCountError struct {
	Line  int
	Token string
	Err   error
}

func (e *MalformedCountError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Malformed coverage count %q on line %d: %s", e.Token, e.Line, e.Err)
	}
	return fmt.Sprintf("Malformed coverage count %q: %s", e.Token, e.Err)
}

func (e *MalformedCountError) Unwrap() error {
	return e.Err
}
