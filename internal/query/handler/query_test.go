package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/repositories/sql/calllog"
)

type fakeClient struct {
	lastSpec  externalcall.RequestSpec
	lastCreds externalcall.Credentials
	resp      string
	err       error
}

func (f *fakeClient) Invoke(ctx context.Context, spec externalcall.RequestSpec, creds externalcall.Credentials, body []byte) (string, error) {
	f.lastSpec = spec
	f.lastCreds = creds
	return f.resp, f.err
}

type fakeRecorder struct {
	spec  externalcall.RequestSpec
	calls int
}

func (f *fakeRecorder) Record(spec externalcall.RequestSpec, statusCode int, outcome string, duration time.Duration, operator string) {
	f.spec = spec
	f.calls++
}

func (f *fakeRecorder) Recent(limit int) ([]calllog.Table, error) {
	return nil, nil
}

func (f *fakeRecorder) RecentByOperation(operation string, limit int) ([]calllog.Table, error) {
	return nil, nil
}

func TestQueryHandler_SpecSelection(t *testing.T) {
	tests := []struct {
		name         string
		call         func(h QueryHandler, creds externalcall.Credentials) (string, error)
		expectedName string
		description  string
	}{
		{
			name: "Test 1: venues query",
			call: func(h QueryHandler, creds externalcall.Credentials) (string, error) {
				return h.QueryVenues(context.Background(), creds, []byte(`{}`), "op@example.com")
			},
			expectedName: "query_venues",
			description:  "Venue queries go to /venues/query",
		},
		{
			name: "Test 2: wifi networks query",
			call: func(h QueryHandler, creds externalcall.Credentials) (string, error) {
				return h.QueryWifiNetworks(context.Background(), creds, []byte(`{}`), "op@example.com")
			},
			expectedName: "query_wifi_networks",
			description:  "Wifi network queries go to /wifiNetworks/query",
		},
		{
			name: "Test 3: access points query",
			call: func(h QueryHandler, creds externalcall.Credentials) (string, error) {
				return h.QueryAccessPoints(context.Background(), creds, []byte(`{}`), "op@example.com")
			},
			expectedName: "query_access_points",
			description:  "Access point queries go to /venues/aps/query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{resp: `{"data":[]}`}
			recorder := &fakeRecorder{}
			h := &queryHandlerImpl{client: client, recorder: recorder}

			creds := externalcall.Credentials{TenantID: "t-9", BearerToken: "tok"}
			body, err := tt.call(h, creds)

			assert.NoError(t, err, tt.description)
			assert.Equal(t, `{"data":[]}`, body, tt.description)
			assert.Equal(t, tt.expectedName, client.lastSpec.Name, tt.description)
			assert.Equal(t, "t-9", client.lastCreds.TenantID, tt.description)
			assert.Equal(t, 1, recorder.calls, "every exchange lands in the call log")
		})
	}
}
