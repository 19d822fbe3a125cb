package types_test

import (
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/queue-composer/internal/types"
)

var _ interface {
	gomock.Matcher
	Validate() error
	IsZero() bool
} = types.MessageID("")

func TestParse(t *testing.T) {
	for _, s := range []string{"", "abra-cadabra", "-1", "100000", "007", " 12", "1.5"} {
		_, err := types.Parse[types.MessageID](s)
		require.ErrorIs(t, err, types.ErrInvalidToken, "token %q", s)
	}

	id, err := types.Parse[types.AttributeID]("99999")
	require.NoError(t, err)
	assert.Equal(t, "99999", id.String())
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() {
		types.MustParse[types.MessageID]("abra-cadabra")
	})

	assert.NotPanics(t, func() {
		id := types.MustParse[types.MessageID]("0")
		assert.Equal(t, "0", id.String())
	})
}

func TestNewMessageID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := types.NewMessageID()
		require.NoError(t, id.Validate())

		n, err := strconv.Atoi(id.String())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, types.TokenUpperBound)
	}
}

func TestMessageID_IsZero(t *testing.T) {
	assert.False(t, types.NewMessageID().IsZero())
	assert.True(t, types.MessageIDNil.IsZero())
}

func TestAttributeID_Matches(t *testing.T) {
	id := types.NewAttributeID()
	id2 := types.MustParse[types.AttributeID](id.String())
	// Matched.
	assert.True(t, id.Matches(id2))
	// Not matched.
	assert.False(t, id.Matches(id2.String()))
	assert.False(t, id.Matches(types.MessageID(id.String())))
}

//nolint:testifylint // not directly related single checks
func TestMessageID_Validate(t *testing.T) {
	assert.NoError(t, types.NewMessageID().Validate())
	assert.Error(t, types.MessageID("x").Validate())
	assert.Error(t, types.MessageIDNil.Validate())
}
