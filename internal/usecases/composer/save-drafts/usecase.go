package savedrafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/zestagio/queue-composer/internal/draft"
	draftsrepo "github.com/zestagio/queue-composer/internal/repositories/drafts"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=savedraftsmocks

var ErrInvalidRequest = errors.New("invalid request")

type draftsRepository interface {
	Replace(ctx context.Context, msgs []draft.Message) draftsrepo.Snapshot
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

// Handle replaces the whole drafts list. Drafts without identifiers get fresh ones.
func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	msgs := make([]draft.Message, 0, len(req.Drafts))
	for _, d := range req.Drafts {
		msgs = append(msgs, d.WithIDs())
	}

	s := u.draftsRepo.Replace(ctx, msgs)

	return Response{
		Revision: s.Revision,
		Drafts:   s.Messages,
	}, nil
}
