package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/idea-box/internal/auth"
	"github.com/frahmantamala/idea-box/internal/user"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

type mockUserStore struct {
	byEmployeeID map[string]*user.User
	byID         map[string]*user.User
}

func (m *mockUserStore) GetByEmployeeID(employeeID string) (*user.User, error) {
	u, ok := m.byEmployeeID[employeeID]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserStore) GetByID(id string) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

const (
	testAccessSecret  = "test-access-secret-0123456789abcdef"
	testRefreshSecret = "test-refresh-secret-0123456789abcdef"
)

var _ = Describe("Auth Service", func() {
	var (
		users   *mockUserStore
		service *auth.Service
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		sari := &user.User{
			ID:           "user-1",
			Name:         "Sari",
			EmployeeID:   "EMP002",
			Email:        "sari@company.test",
			PasswordHash: string(hash),
			Role:         "employee",
		}
		users = &mockUserStore{
			byEmployeeID: map[string]*user.User{"EMP002": sari},
			byID:         map[string]*user.User{"user-1": sari},
		}

		tokenGen := auth.NewJWTTokenGenerator(testAccessSecret, testRefreshSecret, 15*time.Minute, 24*time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = auth.NewService(users, tokenGen, logger)
	})

	Describe("Authenticate", func() {
		It("returns tokens and the sanitized user for valid credentials", func() {
			resp, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "password"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AccessToken).NotTo(BeEmpty())
			Expect(resp.RefreshToken).NotTo(BeEmpty())
			Expect(resp.User.EmployeeID).To(Equal("EMP002"))
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "nope"})
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("rejects an unknown employee id with the same error", func() {
			_, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP999", Password: "password"})
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("rejects empty credentials", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("token validation", func() {
		It("round-trips claims through the access token", func() {
			resp, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "password"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(resp.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("user-1"))
			Expect(claims.EmployeeID).To(Equal("EMP002"))
		})

		It("rejects a refresh token presented as an access token", func() {
			resp, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "password"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(resp.RefreshToken)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-jwt")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects expired tokens", func() {
			expiredGen := &auth.JWTTokenGenerator{
				AccessTokenSecret:  []byte(testAccessSecret),
				RefreshTokenSecret: []byte(testRefreshSecret),
				AccessTokenTTL:     -time.Minute,
				RefreshTokenTTL:    24 * time.Hour,
			}
			token, err := expiredGen.GenerateAccessToken("user-1", "EMP002")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
		})
	})

	Describe("RefreshTokens", func() {
		It("issues a fresh pair from a valid refresh token", func() {
			resp, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "password"})
			Expect(err).NotTo(HaveOccurred())

			tokens, err := service.RefreshTokens(resp.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("user-1"))
		})

		It("rejects an access token presented for refresh", func() {
			resp, err := service.Authenticate(auth.LoginDTO{EmployeeID: "EMP002", Password: "password"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RefreshTokens(resp.AccessToken)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})
})
