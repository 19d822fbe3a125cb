package draft

import (
	"slices"

	"github.com/zestagio/queue-composer/internal/types"
)

type Attribute struct {
	ID    types.AttributeID
	Name  string
	Type  AttributeType
	Value string
}

// NewAttribute returns an empty attribute of the default type.
func NewAttribute() Attribute {
	return Attribute{
		ID:   types.NewAttributeID(),
		Type: AttributeTypeString,
	}
}

// Message is a draft composed client-side. Messages are values: an edit produces a new Message.
type Message struct {
	ID         types.MessageID
	Body       string
	Attributes []Attribute

	// Validation is nil until the message has been validated.
	Validation *ValidationResult
}

// NewMessage returns an empty draft.
func NewMessage() Message {
	return Message{ID: types.NewMessageID()}
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	m.Attributes = slices.Clone(m.Attributes)
	if m.Validation != nil {
		v := *m.Validation
		m.Validation = &v
	}
	return m
}

// WithValidation returns a copy of the message carrying the given result.
func (m Message) WithValidation(r ValidationResult) Message {
	m = m.Clone()
	m.Validation = &r
	return m
}

// WithIDs returns a copy of the message where missing identifiers are generated.
func (m Message) WithIDs() Message {
	m = m.Clone()
	if m.ID.IsZero() {
		m.ID = types.NewMessageID()
	}
	for i := range m.Attributes {
		if m.Attributes[i].ID.IsZero() {
			m.Attributes[i].ID = types.NewAttributeID()
		}
	}
	return m
}

// Errors returns validation reasons, or nil if the message is valid or was not validated.
func (m Message) Errors() []string {
	if m.Validation == nil {
		return nil
	}
	return m.Validation.Reasons()
}
