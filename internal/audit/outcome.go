package audit

import (
	"errors"
	"net/http"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/pkg/metric"
)

// Outcome classifies a gateway result for the call log. Successful
// exchanges are collapsed to 200 the same way the gateway collapses
// the 2xx range.
func Outcome(err error) (statusCode int, outcome string) {
	if err == nil {
		return http.StatusOK, metric.TagValueOutcomeOk
	}
	var remoteErr *externalcall.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode, metric.TagValueOutcomeRemoteError
	}
	return 0, metric.TagValueOutcomeTransportError
}
