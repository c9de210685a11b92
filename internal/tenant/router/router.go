package router

import (
	"sync"

	"github.com/msp-tools/tenant-console/internal/configs"
	"github.com/msp-tools/tenant-console/internal/middleware"
	"github.com/msp-tools/tenant-console/internal/tenant/controller"
	"github.com/msp-tools/tenant-console/internal/tenant/handler"
	"github.com/msp-tools/tenant-console/pkg/httpframework"
)

var initTenantRouterOnce sync.Once

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initTenantRouterOnce.Do(func() {
		handler.InitTenantHandler(config)

		tenantAPI := httpframework.Instance().Group("/api/v1/console")
		tenantAPI.Use(middleware.SessionAuth(config.JwtSigningKey))
		{
			tenantAPI.GET("/tenants/:tenantId", controller.NewController().GetTenant)
			tenantAPI.PUT("/tenants/:tenantId", controller.NewController().UpdateTenant)
		}
	})
}
