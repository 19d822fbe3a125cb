package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	src, err := render("types", []string{"MessageID", "AttributeID"})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package types")
	assert.Contains(t, out, "MessageID | AttributeID")
	assert.Contains(t, out, "func NewAttributeID() AttributeID")
	assert.Contains(t, out, "func (t MessageID) Matches(x any) bool")
}

func TestRender_InvalidNames(t *testing.T) {
	_, err := render("my-types", []string{"MessageID"})
	require.Error(t, err)

	_, err = render("types", []string{"messageID"})
	require.Error(t, err)
}
