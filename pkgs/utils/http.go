package utils

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

////////////////////////////////////////////////////////////////////////////////

// HttpStatusError represents a non-2xx HTTP response
type HttpStatusError struct {
	Code int
	Msg  string
}

func (err *HttpStatusError) Error() string {
	return fmt.Sprintf("%d: %s", err.Code, err.Msg)
}

func NewHttpStatusError(code int, msg string) *HttpStatusError {
	return &HttpStatusError{Code: code, Msg: msg}
}

////////////////////////////////////////////////////////////////////////////////

// CheckRespStatus returns an HttpStatusError if the response status is not 2xx
func CheckRespStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return NewHttpStatusError(resp.StatusCode(), resp.Status())
}

// IsStatusCode reports whether err carries the given HTTP status code
func IsStatusCode(err error, code int) bool {
	var statusErr *HttpStatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}
