//go:build integration

package sqsclient_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	"github.com/zestagio/queue-composer/internal/draft"
	"github.com/zestagio/queue-composer/internal/testingh"
)

type ClientIntegrationSuite struct {
	testingh.ContextSuite
	cli *sqsclient.Client
}

func TestClientIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ClientIntegrationSuite))
}

func (s *ClientIntegrationSuite) SetupSuite() {
	s.ContextSuite.SetupSuite()

	var err error
	s.cli, err = sqsclient.New(sqsclient.NewOptions(
		testingh.Config.SQSRegion,
		"test",
		"test",
		sqsclient.WithEndpoint(testingh.Config.SQSEndpoint),
		sqsclient.WithDebugMode(true),
	))
	s.Require().NoError(err)
}

func (s *ClientIntegrationSuite) TestSendMessageWithAttributes() {
	msg := draft.NewMessage()
	msg.Body = `{"order": 42}`
	msg.Attributes = []draft.Attribute{
		{ID: "1", Name: "Source", Type: draft.AttributeTypeString, Value: "composer"},
		{ID: "2", Name: "Priority", Type: draft.AttributeTypeNumber, Value: "10"},
		{ID: "3", Name: "Blob", Type: draft.AttributeTypeBinary, Value: "raw bytes"},
	}

	req, err := draft.BuildSendRequest(testingh.Config.SQSQueueURL, msg)
	s.Require().NoError(err)

	res, err := s.cli.SendMessage(s.Ctx, req)
	s.Require().NoError(err)
	s.NotEmpty(res.MessageID)
	s.NotEmpty(res.MD5OfBody)
}
