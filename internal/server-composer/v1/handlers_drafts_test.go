package composerv1_test

import (
	"errors"
	"net/http"

	"github.com/golang/mock/gomock"

	"github.com/zestagio/queue-composer/internal/draft"
	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	"github.com/zestagio/queue-composer/internal/types"
	getattributetypes "github.com/zestagio/queue-composer/internal/usecases/composer/get-attribute-types"
	getdrafts "github.com/zestagio/queue-composer/internal/usecases/composer/get-drafts"
	savedrafts "github.com/zestagio/queue-composer/internal/usecases/composer/save-drafts"
)

func (s *HandlersSuite) TestGetAttributeTypes_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/getAttributeTypes", "")
	s.getAttributeTypes.EXPECT().Handle(eCtx.Request().Context()).
		Return(getattributetypes.Response{Types: draft.AttributeTypes()}, nil)

	// Action.
	err := s.handlers.PostGetAttributeTypes(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(`
{
    "data": {
        "types": [
            {"value": "String", "label": "Text"},
            {"value": "Number", "label": "Number"},
            {"value": "Binary", "label": "Binary"}
        ]
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestGetDrafts_Success() {
	// Arrange.
	msg := draft.Message{
		ID:   "42",
		Body: "hello",
		Attributes: []draft.Attribute{
			{ID: "7", Name: "trace", Type: draft.AttributeTypeString, Value: "abc"},
		},
	}
	invalid := draft.Message{ID: "43"}
	invalid = invalid.WithValidation(draft.Validate(invalid))

	resp, eCtx := s.newEchoCtx("/v1/getDrafts", "")
	s.getDrafts.EXPECT().Handle(eCtx.Request().Context()).Return(getdrafts.Response{
		Revision: 3,
		Drafts:   []draft.Message{msg, invalid},
	}, nil)

	// Action.
	err := s.handlers.PostGetDrafts(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(`
{
    "data": {
        "revision": 3,
        "drafts": [
            {
                "id": "42",
                "body": "hello",
                "attributes": [{"id": "7", "name": "trace", "type": "String", "value": "abc"}]
            },
            {
                "id": "43",
                "body": "",
                "attributes": [],
                "validation": {"valid": false, "errors": ["Body is not defined."]}
            }
        ]
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestGetDrafts_UsecaseError() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/getDrafts", "")
	s.getDrafts.EXPECT().Handle(eCtx.Request().Context()).Return(getdrafts.Response{}, errors.New("unexpected"))

	// Action.
	err := s.handlers.PostGetDrafts(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusInternalServerError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSaveDrafts_BindRequestError() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/saveDrafts", `{"drafts": [{"bo`)

	// Action.
	err := s.handlers.PostSaveDrafts(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSaveDrafts_Usecase_InvalidRequest() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/saveDrafts", `{"drafts": [{"id": "1", "body": "", "attributes": []}, {"id": "1", "body": "", "attributes": []}]}`)
	s.saveDrafts.EXPECT().Handle(eCtx.Request().Context(), savedrafts.Request{
		Drafts: []draft.Message{
			{ID: "1", Attributes: []draft.Attribute{}},
			{ID: "1", Attributes: []draft.Attribute{}},
		},
	}).Return(savedrafts.Response{}, savedrafts.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostSaveDrafts(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSaveDrafts_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/saveDrafts", `
{
    "drafts": [
        {
            "body": "{\"a\":1}",
            "attributes": [{"name": "n", "type": "Number", "value": "x"}],
            "validation": {"valid": false, "errors": ["Attribute value at position 0 is not a number."]}
        }
    ]
}`)

	stored := draft.Message{
		ID:   "5",
		Body: `{"a":1}`,
		Attributes: []draft.Attribute{
			{ID: "6", Name: "n", Type: draft.AttributeTypeNumber, Value: "x"},
		},
	}
	stored = stored.WithValidation(draft.Validate(stored))

	s.saveDrafts.EXPECT().Handle(eCtx.Request().Context(), gomock.Any()).
		DoAndReturn(func(_ any, req savedrafts.Request) (savedrafts.Response, error) {
			s.Equal(types.MessageIDNil, req.Drafts[0].ID)
			s.Equal([]string{"Attribute value at position 0 is not a number."}, req.Drafts[0].Errors())
			return savedrafts.Response{Revision: 2, Drafts: []draft.Message{stored}}, nil
		})

	// Action.
	err := s.handlers.PostSaveDrafts(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(`
{
    "data": {
        "revision": 2,
        "drafts": [
            {
                "id": "5",
                "body": "{\"a\":1}",
                "attributes": [{"id": "6", "name": "n", "type": "Number", "value": "x"}],
                "validation": {"valid": false, "errors": ["Attribute value at position 0 is not a number."]}
            }
        ]
    }
}`, resp.Body.String())
}
