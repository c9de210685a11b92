package handler

import (
	"context"
	"time"

	"github.com/msp-tools/tenant-console/internal/audit"
	"github.com/msp-tools/tenant-console/internal/externalcall"
)

type tenantHandlerImpl struct {
	client     externalcall.TenantAPIClient
	recorder   audit.Recorder
	updateSpec externalcall.RequestSpec
}

// GetTenant fetches the tenant record and returns the raw upstream body.
func (h *tenantHandlerImpl) GetTenant(ctx context.Context, creds externalcall.Credentials, operator string) (string, error) {
	return h.invoke(ctx, externalcall.GetTenant, creds, nil, operator)
}

// UpdateTenant forwards the caller's payload to the configured update
// variant. The payload is passed through unmodified; any schema
// mismatch surfaces as the upstream error text.
func (h *tenantHandlerImpl) UpdateTenant(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	return h.invoke(ctx, h.updateSpec, creds, body, operator)
}

func (h *tenantHandlerImpl) invoke(ctx context.Context, spec externalcall.RequestSpec, creds externalcall.Credentials, body []byte, operator string) (string, error) {
	start := time.Now()
	respBody, err := h.client.Invoke(ctx, spec, creds, body)
	statusCode, outcome := audit.Outcome(err)
	h.recorder.Record(spec, statusCode, outcome, time.Since(start), operator)
	return respBody, err
}
