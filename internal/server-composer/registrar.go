package servercomposer

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	oapimdlwr "github.com/oapi-codegen/echo-middleware"

	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
)

func NewHandlersRegistrar(
	v1Swagger *openapi3.T,
	v1Handlers composerv1.ServerInterface,
	httpErrorHandler echo.HTTPErrorHandler,
) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		v1 := e.Group("v1", oapimdlwr.OapiRequestValidatorWithOptions(v1Swagger, &oapimdlwr.Options{
			Options: openapi3filter.Options{
				ExcludeRequestBody:  false,
				ExcludeResponseBody: true,
				AuthenticationFunc:  openapi3filter.NoopAuthenticationFunc,
			},
		}))
		composerv1.RegisterHandlers(v1, v1Handlers)

		e.HTTPErrorHandler = httpErrorHandler
	}
}
