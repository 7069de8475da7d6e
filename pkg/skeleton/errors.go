package skeleton

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistentIndent is the sentinel for indentation-consistency
// failures; match it with errors.Is.
var ErrInconsistentIndent = errors.New("inconsistent indentation")

// InconsistencyError reports a line whose leading whitespace diverges from
// the established indentation prefixes partway through. The input cannot be
// reliably structured past such a line, so extraction of the whole file is
// refused rather than producing a silently wrong tree.
type InconsistencyError struct {
	// Line is the 0-based offending line number.
	Line int

	// Text is the raw offending line, without its trailing newline.
	Text string
}

// Error implements the error interface.
func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent indentation at line %d: %q",
		e.Line, strings.TrimRight(e.Text, "\r\n"))
}

// Unwrap makes errors.Is(err, ErrInconsistentIndent) work.
func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistentIndent
}
