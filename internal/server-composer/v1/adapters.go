package composerv1

import (
	"errors"

	"github.com/zestagio/queue-composer/internal/draft"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	"github.com/zestagio/queue-composer/pkg/pointer"
)

func adaptMessage(m draft.Message) Message {
	attrs := make([]Attribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		attrs = append(attrs, Attribute{
			Id:    pointer.PtrWithZeroAsNil(a.ID),
			Name:  a.Name,
			Type:  a.Type.String(),
			Value: a.Value,
		})
	}

	var v *Validation
	if m.Validation != nil {
		v = &Validation{
			Valid:  m.Validation.IsValid(),
			Errors: nonNil(m.Validation.Reasons()),
		}
	}

	return Message{
		Attributes: attrs,
		Body:       m.Body,
		Id:         pointer.PtrWithZeroAsNil(m.ID),
		Validation: v,
	}
}

func adaptMessages(msgs []draft.Message) []Message {
	result := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, adaptMessage(m))
	}
	return result
}

// toDraft keeps the validation outcome the browser sent back, so the draft
// snapshot shows the same errors after a reload.
func (m Message) toDraft() draft.Message {
	attrs := make([]draft.Attribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		attrs = append(attrs, draft.Attribute{
			ID:    pointer.Indirect(a.Id),
			Name:  a.Name,
			Type:  draft.AttributeType(a.Type),
			Value: a.Value,
		})
	}

	msg := draft.Message{
		ID:         pointer.Indirect(m.Id),
		Body:       m.Body,
		Attributes: attrs,
	}

	if v := m.Validation; v != nil {
		reasons := make([]error, 0, len(v.Errors))
		if !v.Valid {
			for _, r := range v.Errors {
				reasons = append(reasons, errors.New(r))
			}
		}
		msg = msg.WithValidation(draft.Invalid(reasons...))
	}

	return msg
}

func adaptConnection(c settingsrepo.Connection) Connection {
	return Connection{
		AccessKeyId:     c.AccessKeyID,
		QueueUrl:        c.QueueURL,
		Region:          c.Region,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	}
}

func (c Connection) toSettings() settingsrepo.Connection {
	return settingsrepo.Connection{
		Region:          c.Region,
		AccessKeyID:     c.AccessKeyId,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		QueueURL:        c.QueueUrl,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
