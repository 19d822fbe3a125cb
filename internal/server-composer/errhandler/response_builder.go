package errhandler

import (
	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	"github.com/zestagio/queue-composer/pkg/pointer"
)

type Response struct {
	Error composerv1.Error `json:"error"`
}

var ResponseBuilder = func(code int, msg string, details string) any {
	return Response{
		Error: composerv1.Error{
			Code:    composerv1.ErrorCode(code),
			Details: pointer.PtrWithZeroAsNil(details),
			Message: msg,
		},
	}
}
