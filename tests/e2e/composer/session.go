//go:build e2e

package composer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
)

var errNoData = errors.New("no data field in response")

// APIError is the error envelope returned by the composer API.
type APIError struct {
	Code    composerv1.ErrorCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

//go:generate options-gen -out-filename=session_options.gen.go -from-struct=Options
type Options struct {
	endpoint  string `option:"mandatory" validate:"required,url"`
	debugMode bool
}

// Session is the browser side of the composer: it keeps the last drafts snapshot.
type Session struct {
	api *resty.Client

	revision int64
	drafts   []composerv1.Message
}

func New(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	api := resty.New().
		SetBaseURL(opts.endpoint).
		SetDebug(opts.debugMode).
		SetHeader("Content-Type", "application/json")

	return &Session{api: api}, nil
}

func (s *Session) Drafts() []composerv1.Message {
	return s.drafts
}

func (s *Session) Revision() int64 {
	return s.revision
}

func (s *Session) AttributeTypes(ctx context.Context) ([]composerv1.AttributeTypeInfo, error) {
	var resp composerv1.GetAttributeTypesResponse
	if err := s.post(ctx, "/getAttributeTypes", nil, &resp); err != nil {
		return nil, err
	}
	if err := check(resp.Error); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, errNoData
	}
	return resp.Data.Types, nil
}

func (s *Session) Refresh(ctx context.Context) error {
	var resp composerv1.GetDraftsResponse
	if err := s.post(ctx, "/getDrafts", nil, &resp); err != nil {
		return err
	}
	if err := check(resp.Error); err != nil {
		return err
	}
	if resp.Data == nil {
		return errNoData
	}
	s.revision, s.drafts = resp.Data.Revision, resp.Data.Drafts
	return nil
}

func (s *Session) SaveDrafts(ctx context.Context, drafts []composerv1.Message) error {
	var resp composerv1.SaveDraftsResponse
	if err := s.post(ctx, "/saveDrafts", composerv1.SaveDraftsRequest{Drafts: drafts}, &resp); err != nil {
		return err
	}
	if err := check(resp.Error); err != nil {
		return err
	}
	if resp.Data == nil {
		return errNoData
	}
	s.revision, s.drafts = resp.Data.Revision, resp.Data.Drafts
	return nil
}

func (s *Session) Validate(ctx context.Context, msg composerv1.Message) (composerv1.Message, error) {
	var resp composerv1.ValidateMessageResponse
	if err := s.post(ctx, "/validateMessage", composerv1.ValidateMessageRequest{Message: msg}, &resp); err != nil {
		return composerv1.Message{}, err
	}
	if err := check(resp.Error); err != nil {
		return composerv1.Message{}, err
	}
	if resp.Data == nil {
		return composerv1.Message{}, errNoData
	}
	return *resp.Data, nil
}

func (s *Session) Send(ctx context.Context, msg composerv1.Message) (composerv1.SendResult, error) {
	var resp composerv1.SendMessageResponse
	if err := s.post(ctx, "/sendMessage", composerv1.SendMessageRequest{Message: msg}, &resp); err != nil {
		return composerv1.SendResult{}, err
	}
	if err := check(resp.Error); err != nil {
		return composerv1.SendResult{}, err
	}
	if resp.Data == nil {
		return composerv1.SendResult{}, errNoData
	}
	return *resp.Data, nil
}

func (s *Session) Settings(ctx context.Context) (composerv1.Settings, error) {
	var resp composerv1.GetSettingsResponse
	if err := s.post(ctx, "/getSettings", nil, &resp); err != nil {
		return composerv1.Settings{}, err
	}
	if err := check(resp.Error); err != nil {
		return composerv1.Settings{}, err
	}
	if resp.Data == nil {
		return composerv1.Settings{}, errNoData
	}
	return *resp.Data, nil
}

func (s *Session) SaveSettings(ctx context.Context, conn composerv1.Connection) (composerv1.Settings, error) {
	var resp composerv1.SaveSettingsResponse
	if err := s.post(ctx, "/saveSettings", composerv1.SaveSettingsRequest{Connection: conn}, &resp); err != nil {
		return composerv1.Settings{}, err
	}
	if err := check(resp.Error); err != nil {
		return composerv1.Settings{}, err
	}
	if resp.Data == nil {
		return composerv1.Settings{}, errNoData
	}
	return *resp.Data, nil
}

func (s *Session) TestConnection(ctx context.Context, conn composerv1.Connection) (composerv1.ConnectionTestResult, error) {
	var resp composerv1.TestConnectionResponse
	if err := s.post(ctx, "/testConnection", composerv1.TestConnectionRequest{Connection: conn}, &resp); err != nil {
		return composerv1.ConnectionTestResult{}, err
	}
	if err := check(resp.Error); err != nil {
		return composerv1.ConnectionTestResult{}, err
	}
	if resp.Data == nil {
		return composerv1.ConnectionTestResult{}, errNoData
	}
	return *resp.Data, nil
}

// Post sends a raw body, for requests the typed methods cannot express.
func (s *Session) Post(ctx context.Context, path string, body any) (*composerv1.Error, error) {
	var resp struct {
		Error *composerv1.Error `json:"error"`
	}
	if err := s.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return resp.Error, nil
}

func (s *Session) post(ctx context.Context, path string, body, result any) error {
	req := s.api.R().SetContext(ctx).SetResult(result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %v", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode())
	}
	return nil
}

func check(e *composerv1.Error) error {
	if e == nil {
		return nil
	}
	return &APIError{Code: e.Code, Message: e.Message}
}
