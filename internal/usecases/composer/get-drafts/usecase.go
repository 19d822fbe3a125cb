package getdrafts

import (
	"context"

	draftsrepo "github.com/zestagio/queue-composer/internal/repositories/drafts"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=getdraftsmocks

type draftsRepository interface {
	Snapshot(ctx context.Context) draftsrepo.Snapshot
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	draftsRepo draftsRepository `option:"mandatory" validate:"required"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts}, opts.Validate()
}

func (u UseCase) Handle(ctx context.Context) (Response, error) {
	s := u.draftsRepo.Snapshot(ctx)

	return Response{
		Revision: s.Revision,
		Drafts:   s.Messages,
	}, nil
}
