package handler

import (
	"context"
	"time"

	"github.com/msp-tools/tenant-console/internal/audit"
	"github.com/msp-tools/tenant-console/internal/externalcall"
)

type queryHandlerImpl struct {
	client   externalcall.TenantAPIClient
	recorder audit.Recorder
}

// QueryVenues forwards a venues query with the payload as-is.
func (h *queryHandlerImpl) QueryVenues(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	return h.invoke(ctx, externalcall.QueryVenues, creds, body, operator)
}

// QueryWifiNetworks forwards a wifi-networks query with the payload as-is.
func (h *queryHandlerImpl) QueryWifiNetworks(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	return h.invoke(ctx, externalcall.QueryWifiNetworks, creds, body, operator)
}

// QueryAccessPoints forwards an access-points query with the payload as-is.
func (h *queryHandlerImpl) QueryAccessPoints(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	return h.invoke(ctx, externalcall.QueryAccessPoints, creds, body, operator)
}

func (h *queryHandlerImpl) invoke(ctx context.Context, spec externalcall.RequestSpec, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	start := time.Now()
	respBody, err := h.client.Invoke(ctx, spec, creds, body)
	statusCode, outcome := audit.Outcome(err)
	h.recorder.Record(spec, statusCode, outcome, time.Since(start), operator)
	return respBody, err
}
