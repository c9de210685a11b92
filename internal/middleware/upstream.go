package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/pkg/api"
)

const (
	// HeaderApiBaseUrl carries the upstream API base URL per request.
	HeaderApiBaseUrl = "X-Api-Base-Url"
	// HeaderUpstreamToken carries the upstream bearer token per request.
	// The Authorization header is reserved for the console session JWT.
	HeaderUpstreamToken = "X-Upstream-Token"
)

// UpstreamCredentials assembles per-call upstream credentials from the
// request headers. Credentials live only for the duration of the call;
// nothing here is cached or stored.
func UpstreamCredentials(c *gin.Context, tenantID string) (externalcall.Credentials, *api.Error) {
	baseURL := strings.TrimRight(c.GetHeader(HeaderApiBaseUrl), "/")
	if baseURL == "" {
		return externalcall.Credentials{}, api.NewBadRequestError(HeaderApiBaseUrl + " header is required")
	}
	token := c.GetHeader(HeaderUpstreamToken)
	if token == "" {
		return externalcall.Credentials{}, api.NewBadRequestError(HeaderUpstreamToken + " header is required")
	}

	return externalcall.Credentials{
		BaseURL:     baseURL,
		TenantID:    tenantID,
		BearerToken: token,
	}, nil
}
