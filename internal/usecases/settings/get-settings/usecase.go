package getsettings

import (
	"context"
	"fmt"

	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=getsettingsmocks

type settingsRepository interface {
	Get(ctx context.Context) (settingsrepo.Connection, error)
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	settingsRepo settingsRepository `option:"mandatory" validate:"required"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts}, opts.Validate()
}

func (u UseCase) Handle(ctx context.Context) (Response, error) {
	conn, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("get connection settings: %v", err)
	}

	return Response{
		Connection: conn,
		Complete:   conn.IsComplete(),
	}, nil
}
