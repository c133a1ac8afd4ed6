package twitterclient

import (
	"fmt"

	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// Error definitions
var (
	ErrWouldBlock = fmt.Errorf("EWOULDBLOCK")
)

////////////////////////////////////////////////////////////////////////////////

// TwitterApiError represents an error object reported in a v2 response body.
// The API returns these with a 2xx status for partial failures, e.g. a
// lookup of a username that does not exist.
type TwitterApiError struct {
	Title  string
	Detail string
	raw    string
}

func (err *TwitterApiError) Error() string {
	return err.raw
}

func NewTwitterApiError(title, detail, raw string) *TwitterApiError {
	return &TwitterApiError{Title: title, Detail: detail, raw: raw}
}

// CheckApiResp inspects a response body for the v2 errors shape
func CheckApiResp(body []byte) error {
	errs := gjson.GetBytes(body, "errors")
	if !errs.Exists() {
		return nil
	}

	first := errs.Get("0")
	return NewTwitterApiError(
		first.Get("title").String(),
		first.Get("detail").String(),
		string(body),
	)
}

////////////////////////////////////////////////////////////////////////////////

// ValidationError reports a response body that does not match the expected
// shape. No record is constructed when one is returned.
type ValidationError struct {
	Field string
	raw   string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid response: missing or malformed field %q", err.Field)
}

// Raw returns the offending JSON fragment
func (err *ValidationError) Raw() string {
	return err.raw
}

func NewValidationError(field, raw string) *ValidationError {
	return &ValidationError{Field: field, raw: raw}
}
