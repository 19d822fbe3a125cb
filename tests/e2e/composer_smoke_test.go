//go:build e2e

package e2e_test

import (
	"context"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	"github.com/zestagio/queue-composer/tests/e2e/composer"
)

var _ = ginkgo.Describe("Composer Smoke", ginkgo.Ordered, func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc

		session *composer.Session
	)

	ginkgo.BeforeAll(func() {
		ctx, cancel = context.WithCancel(suiteCtx)
		session = newSession()
	})

	ginkgo.AfterAll(func() {
		cancel()
	})

	ginkgo.It("attribute types catalog starts with the default type", func() {
		types, err := session.AttributeTypes(ctx)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(types).Should(gomega.HaveLen(3))
		gomega.Expect(types[0]).Should(gomega.Equal(composerv1.AttributeTypeInfo{
			Label: "Text",
			Value: composerv1.AttributeTypeString,
		}))
	})

	ginkgo.It("session always has at least one draft", func() {
		err := session.Refresh(ctx)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(session.Drafts()).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("drafts list is replaced as a whole", func() {
		before := session.Revision()

		err := session.SaveDrafts(ctx, []composerv1.Message{
			{Body: `{"n":1}`, Attributes: []composerv1.Attribute{}},
			{Body: "second", Attributes: []composerv1.Attribute{}},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(session.Revision()).Should(gomega.BeNumerically(">", before))
		gomega.Expect(session.Drafts()).Should(gomega.HaveLen(2))

		for _, d := range session.Drafts() {
			gomega.Expect(d.Id).ShouldNot(gomega.BeNil())
		}

		saved := session.Drafts()
		gomega.Expect(session.Refresh(ctx)).Should(gomega.Succeed())
		gomega.Expect(session.Drafts()).Should(gomega.Equal(saved))
	})

	ginkgo.It("validation reports every problem", func() {
		msg, err := session.Validate(ctx, composerv1.Message{
			Body: "   ",
			Attributes: []composerv1.Attribute{
				{Name: "a", Type: "Number", Value: "abc"},
				{Name: "a", Type: "Date", Value: ""},
			},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		printJSON(msg)

		gomega.Expect(msg.Validation).ShouldNot(gomega.BeNil())
		gomega.Expect(msg.Validation.Valid).Should(gomega.BeFalse())
		gomega.Expect(msg.Validation.Errors).Should(gomega.Equal([]string{
			"Body is not defined.",
			"Attribute Name is not unique.",
			"Attribute value at position 0 is not a number.",
			"Attribute Value at position 1 is undefined.",
			"Attribute Data Type at position 1 is invalid.",
		}))
	})

	ginkgo.It("message is not sent without connection settings", func() {
		_, err := session.SaveSettings(ctx, composerv1.Connection{})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		_, err = session.Send(ctx, composerv1.Message{Body: "hello", Attributes: []composerv1.Attribute{}})

		var apiErr *composer.APIError
		gomega.Expect(err).Should(gomega.BeAssignableToTypeOf(apiErr))
		gomega.Expect(err.(*composer.APIError).Code).Should(gomega.Equal(composerv1.ErrorCodeConnectionNotConfigured))
	})

	ginkgo.It("settings are stored", func() {
		stored, err := session.SaveSettings(ctx, queueConnection)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(stored.Complete).Should(gomega.BeTrue())

		settings, err := session.Settings(ctx)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(settings.Connection).Should(gomega.Equal(queueConnection))
	})

	ginkgo.It("connection test sends a probe message", func() {
		result, err := session.TestConnection(ctx, queueConnection)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(result.Sent).Should(gomega.BeTrue())
		gomega.Expect(result.MessageId).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("connection test to an unknown queue fails as data", func() {
		conn := queueConnection
		conn.QueueUrl += "-does-not-exist"

		result, err := session.TestConnection(ctx, conn)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(result.Sent).Should(gomega.BeFalse())
		gomega.Expect(result.Errors).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("invalid message is not sent", func() {
		result, err := session.Send(ctx, composerv1.Message{
			Body:       "hello",
			Attributes: []composerv1.Attribute{{Name: "", Type: "String", Value: "v"}},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(result.Sent).Should(gomega.BeFalse())
		gomega.Expect(*result.Errors).Should(gomega.Equal([]string{"Attribute Name at position 0 is undefined."}))
	})

	ginkgo.It("valid message is sent with attributes", func() {
		result, err := session.Send(ctx, composerv1.Message{
			Body: ` {"order": 42, "price": 10.50} `,
			Attributes: []composerv1.Attribute{
				{Name: "tenant", Type: "String", Value: "acme"},
				{Name: "retries", Type: "Number", Value: "3"},
				{Name: "blob", Type: "Binary", Value: "raw"},
			},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		printJSON(result)

		gomega.Expect(result.Sent).Should(gomega.BeTrue())
		gomega.Expect(result.MessageId).ShouldNot(gomega.BeNil())
		gomega.Expect(result.Errors).Should(gomega.BeNil())
		gomega.Expect(result.Message.Body).Should(gomega.Equal("{\n    \"order\": 42,\n    \"price\": 10.50\n}"))
	})
})
