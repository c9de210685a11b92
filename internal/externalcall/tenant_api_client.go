// Package externalcall holds the outbound REST client for the
// third-party tenant-management cloud API. Every console operation maps
// to one RequestSpec and one Invoke call.
package externalcall

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/pkg/metric"
)

const defaultTimeoutSeconds = 30

var (
	initOnce       sync.Once
	timeoutSeconds = defaultTimeoutSeconds
)

// InitTenantAPIClient sets the upstream request timeout. Must be called
// before the first GetTenantAPIClient.
func InitTenantAPIClient(gatewayTimeoutSeconds int) {
	initOnce.Do(func() {
		if gatewayTimeoutSeconds > 0 {
			timeoutSeconds = gatewayTimeoutSeconds
		}
	})
}

// TenantAPIClient issues one upstream HTTP exchange per call. It holds
// no per-call state; credentials and payload travel as arguments, so
// concurrent calls with different credentials never interfere.
type TenantAPIClient interface {
	Invoke(ctx context.Context, spec RequestSpec, creds Credentials, body []byte) (string, error)
}

type tenantAPIClientImpl struct {
	HTTPClient *http.Client
}

var (
	clientInstance TenantAPIClient
	clientOnce     sync.Once
)

// GetTenantAPIClient returns the shared client. The underlying
// http.Client (and its connection pool) is safe for concurrent use.
func GetTenantAPIClient() TenantAPIClient {
	clientOnce.Do(func() {
		clientInstance = &tenantAPIClientImpl{
			HTTPClient: &http.Client{
				Timeout: time.Duration(timeoutSeconds) * time.Second,
			},
		}
	})
	return clientInstance
}

// Invoke resolves the URL from the spec and credentials, attaches the
// fixed header set, sends the request exactly once and reduces the
// outcome to (body, nil) or (_, error). No retries, no redirect-policy
// override, no reshaping of the payload or the response.
func (t *tenantAPIClientImpl) Invoke(ctx context.Context, spec RequestSpec, creds Credentials, body []byte) (string, error) {
	url := spec.ResolveURL(creds)

	var payload io.Reader
	if spec.RequiresBody {
		payload = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, url, payload)
	if err != nil {
		return "", fmt.Errorf("Request failed: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+creds.BearerToken)
	if spec.Method == http.MethodGet {
		req.Header.Set("Accept", "application/json")
	}
	if spec.RequiresBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if spec.TenantScoped {
		req.Header.Set("x-rks-tenantid", creds.TenantID)
	}

	log.Debug().Str("operation", spec.Name).Msgf("calling upstream %s %s", spec.Method, url)

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	latency := time.Since(start)

	if err != nil {
		emitCallMetrics(spec, latency, 0, metric.TagValueOutcomeTransportError)
		return "", fmt.Errorf("Request failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		emitCallMetrics(spec, latency, resp.StatusCode, metric.TagValueOutcomeTransportError)
		return "", fmt.Errorf("Failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		emitCallMetrics(spec, latency, resp.StatusCode, metric.TagValueOutcomeRemoteError)
		return "", &RemoteError{StatusCode: resp.StatusCode, Body: string(rawBody)}
	}

	emitCallMetrics(spec, latency, resp.StatusCode, metric.TagValueOutcomeOk)
	return string(rawBody), nil
}

func emitCallMetrics(spec RequestSpec, latency time.Duration, statusCode int, outcome string) {
	tags := metric.BuildTag(
		metric.NewTag(metric.TagOperation, spec.Name),
		metric.NewTag(metric.TagMethod, spec.Method),
		metric.NewTag(metric.TagHttpStatusCode, strconv.Itoa(statusCode)),
		metric.NewTag(metric.TagOutcome, outcome),
	)
	metric.Incr(metric.ExternalApiRequestCount, tags)
	metric.Timing(metric.ExternalApiRequestLatency, latency, tags)
}
