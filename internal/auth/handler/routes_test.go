package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthoniusHendriyanto/session-service/internal/mocks"
)

// TestRegisterRoutes verifies that every route is mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockUserStore(ctrl)
	app := newTestApp(t, mockStore)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/signup"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodDelete, "/api/v1/session"},
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/login"},
		{http.MethodGet, "/account"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/metrics"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}

// The protected group must not swallow the public auth endpoints.
func TestPublicRoutesAreNotGuarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockUserStore(ctrl)
	app := newTestApp(t, mockStore)

	// No token at all: logout must still succeed.
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A guarded route without a token is rejected instead.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
