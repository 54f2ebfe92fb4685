package test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"blogapp/internal/config"
	handlers "blogapp/internal/handler"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       "test-secret-key",
		SessionDuration: time.Hour,
	}
}

func newTestHandlers(auth *MockAuthService, posts *MockPostService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService: auth,
		PostService: posts,
		UserRepo:    &MockUserRepository{},
		PostRepo:    &MockPostRepository{},
		Cfg:         testConfig(),
		Validate:    validator.New(),
	}
}

// postForm builds an urlencoded form POST the way a browser submits one.
func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func requireRedirect(t *testing.T, rr *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, location, rr.Header().Get("Location"))
}
