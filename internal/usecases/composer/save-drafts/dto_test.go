package savedrafts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/queue-composer/internal/draft"
	savedrafts "github.com/zestagio/queue-composer/internal/usecases/composer/save-drafts"
)

func TestRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		request savedrafts.Request
		wantErr bool
	}{
		// Positive.
		{
			name:    "single empty draft",
			request: savedrafts.Request{Drafts: []draft.Message{{}}},
			wantErr: false,
		},
		{
			name:    "drafts with and without ids",
			request: savedrafts.Request{Drafts: []draft.Message{{ID: "1"}, {}, {ID: "2"}, {}}},
			wantErr: false,
		},
		{
			name:    "max drafts",
			request: savedrafts.Request{Drafts: make([]draft.Message, savedrafts.MaxDrafts)},
			wantErr: false,
		},

		// Negative.
		{
			name:    "no drafts",
			request: savedrafts.Request{},
			wantErr: true,
		},
		{
			name:    "too many drafts",
			request: savedrafts.Request{Drafts: make([]draft.Message, savedrafts.MaxDrafts+1)},
			wantErr: true,
		},
		{
			name:    "invalid id",
			request: savedrafts.Request{Drafts: []draft.Message{{ID: "abc"}}},
			wantErr: true,
		},
		{
			name:    "duplicate ids",
			request: savedrafts.Request{Drafts: []draft.Message{{ID: "1"}, {ID: "1"}}},
			wantErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
