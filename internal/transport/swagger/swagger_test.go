package swagger_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/transport/swagger"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents the core endpoints", func() {
		for _, path := range []string{
			"/auth/login",
			"/idea",
			"/idea/{id}",
			"/vote/{ideaId}",
			"/comment/{ideaId}",
			"/categories",
			"/dashboard/metrics",
			"/admin/activity",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), path)
		}
	})

	It("marks the admin transitions as authenticated", func() {
		for _, path := range []string{
			"/idea/{id}/approve",
			"/idea/{id}/reject",
			"/idea/{id}/implemented",
		} {
			item := doc.Paths.Find(path)
			Expect(item).NotTo(BeNil(), path)
			Expect(item.Patch.Security).NotTo(BeNil(), path)
		}
	})
})

var _ = Describe("Swagger UI handler", func() {
	It("serves the UI", func() {
		req := httptest.NewRequest("GET", "/swagger/index.html", nil)
		rec := httptest.NewRecorder()

		swagger.Handler().ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(200))
	})
})
