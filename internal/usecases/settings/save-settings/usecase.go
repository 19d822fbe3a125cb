package savesettings

import (
	"context"
	"errors"
	"fmt"

	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=savesettingsmocks

var ErrInvalidRequest = errors.New("invalid request")

type settingsRepository interface {
	Save(ctx context.Context, conn settingsrepo.Connection) error
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

func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	conn := req.Connection()
	if err := u.settingsRepo.Save(ctx, conn); err != nil {
		return Response{}, fmt.Errorf("save connection settings: %v", err)
	}

	return Response{
		Connection: conn,
		Complete:   conn.IsComplete(),
	}, nil
}
