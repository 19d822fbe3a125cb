package composerv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zestagio/queue-composer/internal/draft"
	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	savedrafts "github.com/zestagio/queue-composer/internal/usecases/composer/save-drafts"
)

func (h Handlers) PostGetAttributeTypes(eCtx echo.Context) error {
	result, err := h.getAttributeTypes.Handle(eCtx.Request().Context())
	if err != nil {
		return fmt.Errorf("get attribute types: %w", err)
	}

	types := make([]AttributeTypeInfo, 0, len(result.Types))
	for _, t := range result.Types {
		types = append(types, AttributeTypeInfo{
			Label: t.Label(),
			Value: AttributeType(t),
		})
	}

	return eCtx.JSON(http.StatusOK, &GetAttributeTypesResponse{
		Data: &AttributeTypes{Types: types},
	})
}

func (h Handlers) PostGetDrafts(eCtx echo.Context) error {
	result, err := h.getDrafts.Handle(eCtx.Request().Context())
	if err != nil {
		return fmt.Errorf("get drafts: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &GetDraftsResponse{
		Data: &Drafts{
			Drafts:   adaptMessages(result.Drafts),
			Revision: result.Revision,
		},
	})
}

func (h Handlers) PostSaveDrafts(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var req SaveDraftsRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewBindError(err)
	}

	drafts := make([]draft.Message, 0, len(req.Drafts))
	for _, m := range req.Drafts {
		drafts = append(drafts, m.toDraft())
	}

	result, err := h.saveDrafts.Handle(ctx, savedrafts.Request{Drafts: drafts})
	if err != nil {
		if errors.Is(err, savedrafts.ErrInvalidRequest) {
			return internalerrors.NewInvalidRequestError(err)
		}
		return fmt.Errorf("save drafts: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &SaveDraftsResponse{
		Data: &Drafts{
			Drafts:   adaptMessages(result.Drafts),
			Revision: result.Revision,
		},
	})
}
