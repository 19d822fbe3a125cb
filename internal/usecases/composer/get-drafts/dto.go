package getdrafts

import (
	"github.com/zestagio/queue-composer/internal/draft"
)

type Response struct {
	Revision int64
	Drafts   []draft.Message
}
