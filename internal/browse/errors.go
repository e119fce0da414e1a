package browse

import "fmt"

// InvalidRequestError is returned for request parameters that cannot be
// interpreted, such as an unknown company name.
type InvalidRequestError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidRequestError) Error() string {
	msg := "invalid request"
	if e.Field != "" {
		msg += fmt.Sprintf(": %s", e.Field)
	}
	if e.Message != "" {
		msg += fmt.Sprintf(": %s", e.Message)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}
