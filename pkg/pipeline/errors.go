package pipeline

// WriteError reports an artifact that could not be created: unwritable
// destination, missing parent that could not be made, or a failed write. Any
// partially written file is removed before the error is surfaced so operators
// never pick up a truncated artifact.
type WriteError struct {
	// Path is the artifact destination that failed.
	Path string
	// Err carries the underlying filesystem error.
	Err error
}

func (e *WriteError) Error() string {
	msg := "pipeline: write artifact"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError builds a WriteError for the given destination.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}
