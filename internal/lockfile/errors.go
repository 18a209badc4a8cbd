package lockfile

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every MalformedError.
var ErrMalformed = errors.New("malformed manifest")

// MalformedError reports input that does not have the expected shape.
type MalformedError struct {
	Line   int    // 1-based position of the offending line
	Text   string // content of the offending line
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed manifest at line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is makes errors.Is(err, ErrMalformed) hold.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
