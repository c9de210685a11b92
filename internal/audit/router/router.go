package router

import (
	"sync"

	"github.com/msp-tools/tenant-console/internal/audit/controller"
	"github.com/msp-tools/tenant-console/internal/configs"
	"github.com/msp-tools/tenant-console/internal/middleware"
	"github.com/msp-tools/tenant-console/pkg/httpframework"
)

var initAuditRouterOnce sync.Once

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initAuditRouterOnce.Do(func() {
		auditAPI := httpframework.Instance().Group("/api/v1/console")
		auditAPI.Use(middleware.SessionAuth(config.JwtSigningKey))
		{
			auditAPI.GET("/calls", controller.NewController().GetCalls)
		}
	})
}
