package concurrent

import "fmt"

// ErrCannotRecover is an error that can be passed by clients to
// retry mechanisms so that the attempted action is not retried
type ErrCannotRecover struct {
	Cause error
}

// Error implementation of error for ErrCannotRecover
func (e ErrCannotRecover) Error() string {
	return e.Cause.Error()
}

// ErrMaxAttemptsReached is an error that is returned after attempting
// an action multiple times with failures
type ErrMaxAttemptsReached struct {
	Causes []error
}

// Error implementation of error for ErrMaxAttemptsReached
func (e ErrMaxAttemptsReached) Error() string {
	if len(e.Causes) == 0 {
		return "maximum number of attempts reached"
	}
	return fmt.Sprintf("maximum number of attempts %d reached: %s",
		len(e.Causes), e.Causes[len(e.Causes)-1].Error())
}

// Unwrap returns the error of the last attempt
func (e ErrMaxAttemptsReached) Unwrap() error {
	if len(e.Causes) == 0 {
		return nil
	}
	return e.Causes[len(e.Causes)-1]
}
