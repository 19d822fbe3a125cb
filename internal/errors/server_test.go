package errors_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
)

func TestServerError(t *testing.T) {
	err := internalerrors.NewServerError(
		4242,
		"cannot handle something",
		fmt.Errorf("closed: %w", context.Canceled),
	)
	assert.Equal(t, 4242, err.Code)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessServerError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		expCode    int
		expMsg     string
		expDetails string
	}{
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusBadRequest, "bind request"),
			expCode:    http.StatusBadRequest,
			expMsg:     "bind request",
			expDetails: "code=400, message=bind request",
		},
		{
			name: "custom error",
			err: internalerrors.NewServerError(
				1000,
				"connection not configured",
				fmt.Errorf("load settings: queue url is empty: %w", io.EOF),
			),
			expCode:    1000,
			expMsg:     "connection not configured",
			expDetails: "connection not configured: load settings: queue url is empty: EOF",
		},
		{
			name:       "echo error with non-string message",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge),
			expCode:    http.StatusRequestEntityTooLarge,
			expMsg:     "Request Entity Too Large",
			expDetails: "code=413, message=Request Entity Too Large",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("cannot handle usecase: %w", context.Canceled),
			expCode:    http.StatusInternalServerError,
			expMsg:     "something went wrong",
			expDetails: "cannot handle usecase: context canceled",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, details := internalerrors.ProcessServerError(tt.err)
			assert.Equal(t, tt.expCode, code)
			assert.Equal(t, tt.expMsg, msg)
			assert.Equal(t, tt.expDetails, details)
		})
	}
}

func TestIsInternal(t *testing.T) {
	assert.True(t, internalerrors.IsInternal(http.StatusInternalServerError))
	assert.True(t, internalerrors.IsInternal(http.StatusBadGateway))
	assert.False(t, internalerrors.IsInternal(http.StatusBadRequest))
	assert.False(t, internalerrors.IsInternal(1000))
}

func TestRequestErrors(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF: %w", io.ErrUnexpectedEOF)

	bindErr := internalerrors.NewBindError(cause)
	assert.Equal(t, http.StatusBadRequest, bindErr.Code)
	assert.Equal(t, "bind request", bindErr.Message)
	assert.ErrorIs(t, bindErr, io.ErrUnexpectedEOF)

	invalidErr := internalerrors.NewInvalidRequestError(cause)
	assert.Equal(t, http.StatusBadRequest, invalidErr.Code)
	assert.Equal(t, "invalid request", invalidErr.Message)
}
