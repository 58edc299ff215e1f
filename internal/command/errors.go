package command

import "errors"

// Failure is an executor error carrying the text shown to the user. Err keeps
// the underlying cause for logging and errors.Is.
type Failure struct {
	Msg string
	Err error
}

func (f *Failure) Error() string { return f.Msg }

func (f *Failure) Unwrap() error { return f.Err }

// message returns the line rendered for err.
func message(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Msg
	}
	return err.Error()
}
