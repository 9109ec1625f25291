package cmd

// ArgumentError reports a bad command line: wrong argument count, a margin
// that is not a number, or an invalid flag value.
type ArgumentError struct {
	Message string
	Err     error
}

func (e *ArgumentError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
