package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/middleware"
)

type stubHandler struct {
	lastCreds externalcall.Credentials
	resp      string
	err       error
}

func (s *stubHandler) QueryVenues(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	s.lastCreds = creds
	return s.resp, s.err
}

func (s *stubHandler) QueryWifiNetworks(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	s.lastCreds = creds
	return s.resp, s.err
}

func (s *stubHandler) QueryAccessPoints(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	s.lastCreds = creds
	return s.resp, s.err
}

func newQueryRouter(stub *stubHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := &QueryController{handler: stub}
	router.POST("/venues/query", ctrl.QueryVenues)
	router.POST("/wifiNetworks/query", ctrl.QueryWifiNetworks)
	router.POST("/venues/aps/query", ctrl.QueryAccessPoints)
	return router
}

func queryRequest(path, tenantID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderApiBaseUrl, "https://api.example.com")
	req.Header.Set(middleware.HeaderUpstreamToken, "tok-1")
	if tenantID != "" {
		req.Header.Set(HeaderTenantID, tenantID)
	}
	return req
}

func TestQueryEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		tenantID       string
		body           string
		stub           *stubHandler
		expectedStatus int
		expectedBody   string
		description    string
	}{
		{
			name:           "Test 1: venues query success",
			path:           "/venues/query",
			tenantID:       "t-1",
			body:           `{"page":1}`,
			stub:           &stubHandler{resp: `{"data":[{"id":"v-1"}]}`},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[{"id":"v-1"}]}`,
			description:    "Success passes the upstream body through",
		},
		{
			name:           "Test 2: missing tenant header rejected",
			path:           "/wifiNetworks/query",
			tenantID:       "",
			body:           `{"page":1}`,
			stub:           &stubHandler{resp: `{}`},
			expectedStatus: http.StatusBadRequest,
			description:    "Query operations require the tenant scope header",
		},
		{
			name:           "Test 3: missing payload rejected",
			path:           "/venues/aps/query",
			tenantID:       "t-1",
			body:           "",
			stub:           &stubHandler{resp: `{}`},
			expectedStatus: http.StatusBadRequest,
			description:    "Query operations require a JSON payload",
		},
		{
			name:           "Test 4: remote error keeps upstream status",
			path:           "/venues/query",
			tenantID:       "t-1",
			body:           `{"page":1}`,
			stub:           &stubHandler{err: &externalcall.RemoteError{StatusCode: 401, Body: "token expired"}},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "HTTP 401: token expired",
			description:    "Upstream auth failures surface unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newQueryRouter(tt.stub)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, queryRequest(tt.path, tt.tenantID, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code, tt.description)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody, tt.description)
			}
		})
	}
}

func TestQueryEndpoints_TenantScopeForwarded(t *testing.T) {
	stub := &stubHandler{resp: `{}`}
	router := newQueryRouter(stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, queryRequest("/venues/query", "tenant-42", `{"page":1}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-42", stub.lastCreds.TenantID, "the header tenant id becomes the upstream scope")
}
