package draft

import (
	"github.com/zestagio/queue-composer/internal/types"
)

// RawMessage is a message-like record from an external seed source. Its content is not validated.
type RawMessage struct {
	Body       string         `json:"body" yaml:"body"`
	Attributes []RawAttribute `json:"attributes" yaml:"attributes"`
}

type RawAttribute struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Import converts a raw record into a draft with fresh identifiers and an eager validation result.
func Import(raw RawMessage) Message {
	msg := Message{
		ID:         types.NewMessageID(),
		Body:       FormatBody(raw.Body),
		Attributes: make([]Attribute, 0, len(raw.Attributes)),
	}
	for _, a := range raw.Attributes {
		msg.Attributes = append(msg.Attributes, Attribute{
			ID:    types.NewAttributeID(),
			Name:  a.Name,
			Type:  AttributeType(a.Type),
			Value: a.Value,
		})
	}
	return msg.WithValidation(Validate(msg))
}

// ImportAll imports every record. No records means a session starting with a single empty draft.
func ImportAll(raws []RawMessage) []Message {
	if len(raws) == 0 {
		return []Message{NewMessage()}
	}

	result := make([]Message, 0, len(raws))
	for _, raw := range raws {
		result = append(result, Import(raw))
	}
	return result
}
