package composerv1

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed composer.v1.swagger.yml
var swaggerSpec []byte

// GetSwagger returns the parsed OpenAPI document of the v1 API.
func GetSwagger() (*openapi3.T, error) {
	swagger, err := openapi3.NewLoader().LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("load swagger: %v", err)
	}
	if err := swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate swagger: %v", err)
	}
	return swagger, nil
}
