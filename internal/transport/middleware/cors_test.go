package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/idea-box/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("CORS", func() {
	serve := func(allowedOrigins, origin, method string) *httptest.ResponseRecorder {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		req := httptest.NewRequest(method, "/api/v1/idea", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		rec := httptest.NewRecorder()
		middleware.CORS(allowedOrigins)(next).ServeHTTP(rec, req)
		return rec
	}

	It("allows any origin for the wildcard", func() {
		rec := serve("*", "https://intranet.company.test", http.MethodGet)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("echoes a configured origin", func() {
		rec := serve("https://intranet.company.test", "https://intranet.company.test", http.MethodGet)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://intranet.company.test"))
		Expect(rec.Header().Values("Vary")).To(ContainElement("Origin"))
	})

	It("omits the allow header for an unlisted origin", func() {
		rec := serve("https://intranet.company.test", "https://elsewhere.test", http.MethodGet)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("matches against a comma-separated list", func() {
		rec := serve("https://a.test, https://b.test", "https://b.test", http.MethodGet)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://b.test"))
	})

	It("short-circuits preflight requests", func() {
		rec := serve("*", "https://intranet.company.test", http.MethodOptions)
		Expect(rec.Code).To(Equal(http.StatusNoContent))
	})
})
