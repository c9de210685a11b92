package controller

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/middleware"
	"github.com/msp-tools/tenant-console/internal/tenant/handler"
)

type Tenant interface {
	GetTenant(ctx *gin.Context)
	UpdateTenant(ctx *gin.Context)
}

var (
	tenant Tenant
	once   sync.Once
)

type TenantController struct {
	handler handler.TenantHandler
}

func NewController() Tenant {
	once.Do(func() {
		tenant = &TenantController{
			handler: handler.GetTenantHandler(),
		}
	})
	return tenant
}

// GetTenant proxies GET /tenants/:tenantId upstream and returns the raw
// body on success.
func (t *TenantController) GetTenant(ctx *gin.Context) {
	tenantID := ctx.Param("tenantId")
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tenantId is required"})
		return
	}

	creds, apiErr := middleware.UpstreamCredentials(ctx, tenantID)
	if apiErr != nil {
		ctx.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}

	body, err := t.handler.GetTenant(ctx.Request.Context(), creds, middleware.OperatorEmail(ctx))
	if err != nil {
		respondGatewayError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", []byte(body))
}

// UpdateTenant forwards the caller's JSON payload to the configured
// update variant.
func (t *TenantController) UpdateTenant(ctx *gin.Context) {
	tenantID := ctx.Param("tenantId")
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tenantId is required"})
		return
	}

	creds, apiErr := middleware.UpstreamCredentials(ctx, tenantID)
	if apiErr != nil {
		ctx.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}

	payload, err := ctx.GetRawData()
	if err != nil {
		log.Error().Err(err).Msg("Error in reading request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "request body is required"})
		return
	}

	body, err := t.handler.UpdateTenant(ctx.Request.Context(), creds, payload, middleware.OperatorEmail(ctx))
	if err != nil {
		respondGatewayError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", []byte(body))
}

// respondGatewayError maps a gateway error onto the console response:
// remote errors keep the upstream status code, transport errors become
// 502 with the "Request failed:" message.
func respondGatewayError(ctx *gin.Context, err error) {
	var remoteErr *externalcall.RemoteError
	if errors.As(err, &remoteErr) {
		ctx.JSON(remoteErr.StatusCode, gin.H{"error": remoteErr.Error()})
		return
	}
	ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
