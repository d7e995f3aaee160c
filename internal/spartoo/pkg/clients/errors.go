package clients

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPartner = errors.New("a partner token is required")

// APIError is returned when the API answer is not an XML document.
type APIError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unable to get XML response from Spartoo API (%s, status %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// MissingArgumentError is returned when none of several optional
// parameters was given.
type MissingArgumentError struct {
	Params []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("at least one of these parameters must be provided: %s", strings.Join(e.Params, ", "))
}
