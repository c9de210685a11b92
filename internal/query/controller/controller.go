package controller

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/middleware"
	"github.com/msp-tools/tenant-console/internal/query/handler"
)

// HeaderTenantID scopes query operations to one tenant; it is forwarded
// upstream unchanged.
const HeaderTenantID = "x-rks-tenantid"

type Query interface {
	QueryVenues(ctx *gin.Context)
	QueryWifiNetworks(ctx *gin.Context)
	QueryAccessPoints(ctx *gin.Context)
}

var (
	query Query
	once  sync.Once
)

type QueryController struct {
	handler handler.QueryHandler
}

func NewController() Query {
	once.Do(func() {
		query = &QueryController{
			handler: handler.GetQueryHandler(),
		}
	})
	return query
}

func (q *QueryController) QueryVenues(ctx *gin.Context) {
	q.forward(ctx, q.handler.QueryVenues)
}

func (q *QueryController) QueryWifiNetworks(ctx *gin.Context) {
	q.forward(ctx, q.handler.QueryWifiNetworks)
}

func (q *QueryController) QueryAccessPoints(ctx *gin.Context) {
	q.forward(ctx, q.handler.QueryAccessPoints)
}

type queryFunc func(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error)

// forward is the shared proxy flow for the query-style operations:
// extract credentials, read the payload verbatim, invoke, passthrough.
func (q *QueryController) forward(ctx *gin.Context, call queryFunc) {
	tenantID := ctx.GetHeader(HeaderTenantID)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": HeaderTenantID + " header is required"})
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

	body, err := call(ctx.Request.Context(), creds, payload, middleware.OperatorEmail(ctx))
	if err != nil {
		respondGatewayError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", []byte(body))
}

func respondGatewayError(ctx *gin.Context, err error) {
	var remoteErr *externalcall.RemoteError
	if errors.As(err, &remoteErr) {
		ctx.JSON(remoteErr.StatusCode, gin.H{"error": remoteErr.Error()})
		return
	}
	ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
