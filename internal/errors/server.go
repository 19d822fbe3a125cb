package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultErrorMessage = "something went wrong"

// ServerError carries a response code and a caller-facing message.
// Codes below 1000 are HTTP statuses, the rest are composer codes.
type ServerError struct {
	Code    int
	Message string
	cause   error
}

func NewServerError[T ~int](code T, msg string, err error) *ServerError {
	return &ServerError{
		Code:    int(code),
		Message: msg,
		cause:   err,
	}
}

// NewBindError reports a body that could not be decoded into the request type.
func NewBindError(err error) *ServerError {
	return NewServerError(http.StatusBadRequest, "bind request", err)
}

// NewInvalidRequestError reports a decoded request rejected by a use case.
func NewInvalidRequestError(err error) *ServerError {
	return NewServerError(http.StatusBadRequest, "invalid request", err)
}

func (s *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", s.Message, s.cause)
}

func (s *ServerError) Unwrap() error {
	return s.cause
}

func GetServerErrorCode(err error) int {
	code, _, _ := ProcessServerError(err)
	return code
}

// IsInternal tells if the code means a failure on the server side.
func IsInternal(code int) bool {
	return code >= http.StatusInternalServerError && code < 600
}

// ProcessServerError extracts the code, message and details of the response from err.
func ProcessServerError(err error) (code int, msg string, details string) {
	var errSrv *ServerError
	if errors.As(err, &errSrv) {
		return errSrv.Code, errSrv.Message, errSrv.Error()
	}

	var errHTTP *echo.HTTPError
	if errors.As(err, &errHTTP) {
		return errHTTP.Code, httpErrorMessage(errHTTP), errHTTP.Error()
	}

	return http.StatusInternalServerError, defaultErrorMessage, err.Error()
}

func httpErrorMessage(err *echo.HTTPError) string {
	switch m := err.Message.(type) {
	case nil:
		return http.StatusText(err.Code)
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}
