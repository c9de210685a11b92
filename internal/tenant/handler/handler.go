package handler

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/audit"
	"github.com/msp-tools/tenant-console/internal/configs"
	"github.com/msp-tools/tenant-console/internal/externalcall"
)

// Update-variant selector values for TENANT_UPDATE_MODE.
const (
	UpdateModeTenant       = "tenant"
	UpdateModeMSPCustomers = "msp_customers"
)

// TenantHandler forwards tenant read/update operations upstream.
type TenantHandler interface {
	GetTenant(ctx context.Context, creds externalcall.Credentials, operator string) (string, error)
	UpdateTenant(ctx context.Context, creds externalcall.Credentials, body []byte, operator string) (string, error)
}

var (
	tenantHandler TenantHandler
	initOnce      sync.Once
)

// InitTenantHandler picks the update variant from config and wires the
// shared gateway client and audit recorder.
func InitTenantHandler(config configs.Configs) TenantHandler {
	initOnce.Do(func() {
		updateSpec := externalcall.UpdateTenant
		switch config.TenantUpdateMode {
		case UpdateModeMSPCustomers:
			updateSpec = externalcall.CreateMSPCustomer
		case UpdateModeTenant, "":
		default:
			log.Warn().Msgf("Unknown tenant update mode %q, using per-tenant PUT", config.TenantUpdateMode)
		}
		tenantHandler = &tenantHandlerImpl{
			client:     externalcall.GetTenantAPIClient(),
			recorder:   audit.GetRecorder(),
			updateSpec: updateSpec,
		}
	})
	return tenantHandler
}

// GetTenantHandler returns the initialized handler.
func GetTenantHandler() TenantHandler {
	if tenantHandler == nil {
		log.Fatal().Msg("Tenant handler not initialized")
	}
	return tenantHandler
}
