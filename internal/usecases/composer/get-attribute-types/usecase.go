package getattributetypes

import (
	"context"

	"github.com/zestagio/queue-composer/internal/draft"
)

type UseCase struct{}

func New() UseCase {
	return UseCase{}
}

func (u UseCase) Handle(_ context.Context) (Response, error) {
	return Response{Types: draft.AttributeTypes()}, nil
}
