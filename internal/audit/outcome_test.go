package audit

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/pkg/metric"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedOutcome string
		description     string
	}{
		{
			name:            "Test 1: nil error is ok",
			err:             nil,
			expectedStatus:  http.StatusOK,
			expectedOutcome: metric.TagValueOutcomeOk,
			description:     "Successful exchanges collapse to 200",
		},
		{
			name:            "Test 2: remote error keeps the upstream status",
			err:             &externalcall.RemoteError{StatusCode: 404, Body: "not found"},
			expectedStatus:  404,
			expectedOutcome: metric.TagValueOutcomeRemoteError,
			description:     "Remote errors log the upstream status code",
		},
		{
			name:            "Test 3: wrapped remote error still classified",
			err:             fmt.Errorf("call failed: %w", &externalcall.RemoteError{StatusCode: 500, Body: "boom"}),
			expectedStatus:  500,
			expectedOutcome: metric.TagValueOutcomeRemoteError,
			description:     "Classification unwraps error chains",
		},
		{
			name:            "Test 4: transport error has no status",
			err:             errors.New("Request failed: connection refused"),
			expectedStatus:  0,
			expectedOutcome: metric.TagValueOutcomeTransportError,
			description:     "Transport failures never reached upstream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, outcome := Outcome(tt.err)
			assert.Equal(t, tt.expectedStatus, status, tt.description)
			assert.Equal(t, tt.expectedOutcome, outcome, tt.description)
		})
	}
}
