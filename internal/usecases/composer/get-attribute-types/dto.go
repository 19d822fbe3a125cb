package getattributetypes

import (
	"github.com/zestagio/queue-composer/internal/draft"
)

type Response struct {
	// Types are in catalog order, the first one is the default for new attributes.
	Types []draft.AttributeType
}
