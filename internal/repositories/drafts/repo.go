package draftsrepo

import (
	"context"

	"go.uber.org/atomic"

	"github.com/zestagio/queue-composer/internal/draft"
)

// Snapshot is an immutable view of the session drafts.
type Snapshot struct {
	Revision int64
	Messages []draft.Message
}

// Repo keeps the session drafts in memory. The list is never mutated in place:
// every Replace swaps the whole snapshot.
type Repo struct {
	current *atomic.Pointer[Snapshot]
}

// New creates a repo holding the initial drafts as revision 1.
func New(initial []draft.Message) *Repo {
	return &Repo{
		current: atomic.NewPointer(&Snapshot{
			Revision: 1,
			Messages: cloneMessages(initial),
		}),
	}
}

// Snapshot returns a copy of the current drafts.
func (r *Repo) Snapshot(_ context.Context) Snapshot {
	s := r.current.Load()
	return Snapshot{
		Revision: s.Revision,
		Messages: cloneMessages(s.Messages),
	}
}

// Replace stores msgs as the new drafts list and returns the stored snapshot.
func (r *Repo) Replace(_ context.Context, msgs []draft.Message) Snapshot {
	for {
		old := r.current.Load()
		next := &Snapshot{
			Revision: old.Revision + 1,
			Messages: cloneMessages(msgs),
		}
		if r.current.CompareAndSwap(old, next) {
			return Snapshot{
				Revision: next.Revision,
				Messages: cloneMessages(next.Messages),
			}
		}
	}
}

func cloneMessages(msgs []draft.Message) []draft.Message {
	result := make([]draft.Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, m.Clone())
	}
	return result
}
