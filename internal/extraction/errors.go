// Package extraction pulls plain text out of uploaded resume files.
package extraction

import (
	"errors"
	"fmt"
)

// ErrNoText is returned when a document was decoded but contains no text.
var ErrNoText = errors.New("document contains no extractable text")

// UnsupportedTypeError is returned for file types other than PDF, DOCX and plain text
type UnsupportedTypeError struct {
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIME)
}

// DecodeError represents a failure decoding a supported document format
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s", e.Format)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
