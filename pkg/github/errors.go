package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-github/github"
)

// RemoteRequestError is returned when the API answers with a non-2xx status.
type RemoteRequestError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Message)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when the response body is not a list of
// objects carrying a filename. Index is -1 when the body as a whole could not
// be decoded.
type MalformedResponseError struct {
	Index  int
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed response: item %d: %s", e.Index, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// classifyError maps go-github errors onto RemoteRequestError and
// MalformedResponseError. Anything else is wrapped with the request line.
func classifyError(req *http.Request, err error) error {
	remote := func(resp *http.Response, message string) error {
		e := &RemoteRequestError{
			Method:  req.Method,
			URL:     req.URL.String(),
			Message: message,
			Err:     err,
		}
		if resp != nil {
			e.StatusCode = resp.StatusCode
		}
		return e
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return remote(rateErr.Response, rateErr.Message)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return remote(abuseErr.Response, abuseErr.Message)
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return remote(respErr.Response, respErr.Message)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &MalformedResponseError{Index: -1, Reason: "expected a JSON array of file objects", Err: err}
	}

	return fmt.Errorf("%s %s: %w", req.Method, req.URL.String(), err)
}
