package savedrafts

import (
	"errors"
	"fmt"

	"github.com/zestagio/queue-composer/internal/draft"
	"github.com/zestagio/queue-composer/internal/types"
	"github.com/zestagio/queue-composer/internal/validator"
	"github.com/zestagio/queue-composer/pkg/distinct"
)

// MaxDrafts limits the number of tabs a session keeps.
const MaxDrafts = 100

var errDuplicateDraftID = errors.New("draft ids are not unique")

type Request struct {
	Drafts []draft.Message `validate:"min=1,max=100"`
}

func (r Request) Validate() error {
	if err := validator.Validator.Struct(r); err != nil {
		return err
	}

	given := make([]types.MessageID, 0, len(r.Drafts))
	for i, d := range r.Drafts {
		if d.ID.IsZero() {
			continue
		}
		if err := d.ID.Validate(); err != nil {
			return fmt.Errorf("draft #%d: %v", i, err)
		}
		given = append(given, d.ID)
	}

	if !distinct.By(given, func(id types.MessageID) types.MessageID { return id }) {
		return errDuplicateDraftID
	}
	return nil
}

type Response struct {
	Revision int64
	Drafts   []draft.Message
}
