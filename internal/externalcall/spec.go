package externalcall

import (
	"net/http"
	"strings"
)

const tenantIDPlaceholder = "{tenantId}"

// RequestSpec describes one logical upstream operation. Specs are
// immutable; every call against the tenant API is driven by one of the
// table entries below instead of a hand-rolled request function.
type RequestSpec struct {
	// Name identifies the operation in logs, metrics and the call log.
	Name string
	// Method is the HTTP method used upstream.
	Method string
	// PathTemplate is appended to the base URL; "{tenantId}" is
	// substituted with the caller's tenant id.
	PathTemplate string
	// RequiresBody marks operations that send a JSON payload.
	RequiresBody bool
	// TenantScoped marks operations that need the x-rks-tenantid header.
	TenantScoped bool
}

// Credentials are the per-call connection parameters. They are supplied
// by the caller on every invocation and must not be retained anywhere
// that outlives the call.
type Credentials struct {
	BaseURL     string
	TenantID    string
	BearerToken string
}

// ResolveURL builds the concrete upstream URL for the given credentials.
func (s RequestSpec) ResolveURL(creds Credentials) string {
	path := strings.Replace(s.PathTemplate, tenantIDPlaceholder, creds.TenantID, 1)
	return creds.BaseURL + path
}

// The upstream tenant API operation table.
var (
	GetTenant = RequestSpec{
		Name:         "get_tenant",
		Method:       http.MethodGet,
		PathTemplate: "/tenants/{tenantId}",
	}
	// UpdateTenant is the per-tenant PUT variant of the update operation.
	UpdateTenant = RequestSpec{
		Name:         "update_tenant",
		Method:       http.MethodPut,
		PathTemplate: "/tenants/{tenantId}",
		RequiresBody: true,
	}
	// CreateMSPCustomer is the bulk POST variant of the update operation.
	// Which variant the console forwards to is a config decision
	// (TENANT_UPDATE_MODE); the upstream API owner has not confirmed
	// which endpoint is authoritative.
	CreateMSPCustomer = RequestSpec{
		Name:         "create_msp_customer",
		Method:       http.MethodPost,
		PathTemplate: "/mspCustomers",
		RequiresBody: true,
	}
	QueryVenues = RequestSpec{
		Name:         "query_venues",
		Method:       http.MethodPost,
		PathTemplate: "/venues/query",
		RequiresBody: true,
		TenantScoped: true,
	}
	QueryWifiNetworks = RequestSpec{
		Name:         "query_wifi_networks",
		Method:       http.MethodPost,
		PathTemplate: "/wifiNetworks/query",
		RequiresBody: true,
		TenantScoped: true,
	}
	QueryAccessPoints = RequestSpec{
		Name:         "query_access_points",
		Method:       http.MethodPost,
		PathTemplate: "/venues/aps/query",
		RequiresBody: true,
		TenantScoped: true,
	}
)
