package handler

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/audit"
	"github.com/msp-tools/tenant-console/internal/externalcall"
)

// QueryHandler forwards the tenant-scoped query operations upstream.
type QueryHandler interface {
	QueryVenues(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error)
	QueryWifiNetworks(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error)
	QueryAccessPoints(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error)
}

var (
	queryHandler QueryHandler
	initOnce     sync.Once
)

func InitQueryHandler() QueryHandler {
	initOnce.Do(func() {
		queryHandler = &queryHandlerImpl{
			client:   externalcall.GetTenantAPIClient(),
			recorder: audit.GetRecorder(),
		}
	})
	return queryHandler
}

// GetQueryHandler returns the initialized handler.
func GetQueryHandler() QueryHandler {
	if queryHandler == nil {
		log.Fatal().Msg("Query handler not initialized")
	}
	return queryHandler
}
