package errhandler_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	"github.com/zestagio/queue-composer/internal/server/errhandler"
)

func TestHandler_Handle(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		expDevResp  string
		expProdResp string
		expLogged   bool
	}{
		{
			name:        "schema violation",
			err:         echo.NewHTTPError(http.StatusBadRequest, "request body has an error: doesn't match schema"),
			expDevResp:  `{"code": 400, "message": "request body has an error: doesn't match schema", "details": "code=400, message=request body has an error: doesn't match schema"}`,
			expProdResp: `{"code": 400, "message": "request body has an error: doesn't match schema"}`,
		},
		{
			name: "connection not configured",
			err: internalerrors.NewServerError(
				1000,
				"connection not configured",
				fmt.Errorf("send message: load settings: %w", io.EOF),
			),
			expDevResp:  `{"code": 1000, "message": "connection not configured", "details": "connection not configured: send message: load settings: EOF"}`,
			expProdResp: `{"code": 1000, "message": "connection not configured"}`,
		},
		{
			name:        "body too large",
			err:         echo.ErrStatusRequestEntityTooLarge,
			expDevResp:  `{"code": 413, "message": "Request Entity Too Large", "details": "code=413, message=Request Entity Too Large"}`,
			expProdResp: `{"code": 413, "message": "Request Entity Too Large"}`,
		},
		{
			name:        "unknown error",
			err:         fmt.Errorf("get drafts: %w", context.Canceled),
			expDevResp:  `{"code": 500, "message": "something went wrong", "details": "get drafts: context canceled"}`,
			expProdResp: `{"code": 500, "message": "something went wrong"}`,
			expLogged:   true,
		},
	}

	for _, productionMode := range []bool{false, true} {
		for _, tt := range cases {
			t.Run(fmt.Sprintf("%s/production=%t", tt.name, productionMode), func(t *testing.T) {
				// Arrange.
				core, logs := observer.New(zapcore.ErrorLevel)
				h, err := errhandler.New(errhandler.NewOptions(zap.New(core), productionMode, respBuilder))
				require.NoError(t, err)

				resp, eCtx := newEchoCtx()

				// Action.
				h.Handle(tt.err, eCtx)

				// Assert.
				b, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, resp.Code)

				exp := tt.expDevResp
				if productionMode {
					exp = tt.expProdResp
				}
				assert.JSONEq(t, exp, string(b))

				if tt.expLogged {
					require.Equal(t, 1, logs.Len())
					assert.Equal(t, "unhandled error", logs.All()[0].Message)
				} else {
					assert.Zero(t, logs.Len())
				}
			})
		}
	}
}

func TestHandler_Handle_ResponseCommitted(t *testing.T) {
	h, err := errhandler.New(errhandler.NewOptions(zap.NewNop(), false, respBuilder))
	require.NoError(t, err)

	resp, eCtx := newEchoCtx()
	require.NoError(t, eCtx.NoContent(http.StatusAccepted))

	h.Handle(fmt.Errorf("late failure: %w", io.ErrClosedPipe), eCtx)

	assert.Equal(t, http.StatusAccepted, resp.Code)
	assert.Empty(t, resp.Body.String())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := errhandler.New(errhandler.NewOptions(nil, false, respBuilder))
	require.Error(t, err)

	_, err = errhandler.New(errhandler.NewOptions(zap.NewNop(), false, nil))
	require.Error(t, err)
}

func newEchoCtx() (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/v1/getDrafts", bytes.NewBufferString(`{}`))
	resp := httptest.NewRecorder()
	return resp, echo.New().NewContext(req, resp)
}

type errorEnvelope struct {
	Code    int     `json:"code"`
	Details *string `json:"details,omitempty"`
	Message string  `json:"message"`
}

func respBuilder(code int, msg string, details string) any {
	e := errorEnvelope{Code: code, Message: msg}
	if details != "" {
		e.Details = &details
	}
	return e
}
