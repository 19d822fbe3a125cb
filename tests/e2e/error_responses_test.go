//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	"github.com/zestagio/queue-composer/tests/e2e/composer"
)

var _ = ginkgo.Describe("Error Responses", ginkgo.Ordered, func() {
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

	ginkgo.It("413 request entity too large", func() {
		tooLongBody := strings.Repeat("a", 400_000)

		apiErr, err := session.Post(ctx, "/validateMessage", composerv1.ValidateMessageRequest{
			Message: composerv1.Message{Body: tooLongBody, Attributes: []composerv1.Attribute{}},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		expectErrorCode(apiErr, http.StatusRequestEntityTooLarge)
	})

	ginkgo.It("400 bad request, schema violation", func() {
		apiErr, err := session.Post(ctx, "/saveDrafts", map[string]any{"drafts": []any{}})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		expectErrorCode(apiErr, http.StatusBadRequest)
	})

	ginkgo.It("400 bad request, malformed draft id", func() {
		apiErr, err := session.Post(ctx, "/validateMessage", composerv1.ValidateMessageRequest{
			Message: composerv1.Message{Id: idPtr("abc"), Body: "x", Attributes: []composerv1.Attribute{}},
		})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		expectErrorCode(apiErr, http.StatusBadRequest)
	})

	ginkgo.It("404 unknown operation", func() {
		apiErr, err := session.Post(ctx, "/deleteQueue", map[string]any{})
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		expectErrorCode(apiErr, http.StatusNotFound)
	})
})

func idPtr(s string) *composerv1.MessageId {
	id := composerv1.MessageId(s)
	return &id
}

func expectErrorCode[TCode ~int](apiErr *composerv1.Error, code TCode) {
	gomega.Expect(apiErr).ShouldNot(gomega.BeNil())
	printJSON(apiErr)
	gomega.Expect(apiErr.Code).Should(gomega.BeNumerically("==", code))
}
