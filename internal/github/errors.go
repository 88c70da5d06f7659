package github

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// StatusError is returned when GitHub answers with a non-2xx status
type StatusError struct {
	StatusCode int
	StatusText string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API error: %s", e.StatusText)
}

// newStatusError builds a StatusError from a response, deriving the status
// text from the status line ("404 Not Found" -> "Not Found")
func newStatusError(resp *http.Response) *StatusError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = strconv.Itoa(resp.StatusCode)
	}
	e := &StatusError{StatusCode: resp.StatusCode, StatusText: text}
	if resp.Request != nil && resp.Request.URL != nil {
		e.URL = resp.Request.URL.String()
	}
	return e
}

// TransportError is returned when a request could not be completed or its
// body could not be decoded
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
