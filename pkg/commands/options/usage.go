package options

// UsageError is a command line mistake. The caller prints the usage line
// after the message.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return "usage"
	}
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err, which may be nil, as a UsageError.
func Usage(err error) error {
	return &UsageError{Err: err}
}
