package router

import (
	"sync"

	"github.com/msp-tools/tenant-console/internal/configs"
	"github.com/msp-tools/tenant-console/internal/middleware"
	"github.com/msp-tools/tenant-console/internal/query/controller"
	"github.com/msp-tools/tenant-console/internal/query/handler"
	"github.com/msp-tools/tenant-console/pkg/httpframework"
)

var initQueryRouterOnce sync.Once

// Init expects http framework to be initialized before calling this function
func Init(config configs.Configs) {
	initQueryRouterOnce.Do(func() {
		handler.InitQueryHandler()

		queryAPI := httpframework.Instance().Group("/api/v1/console")
		queryAPI.Use(middleware.SessionAuth(config.JwtSigningKey))
		{
			queryAPI.POST("/venues/query", controller.NewController().QueryVenues)
			queryAPI.POST("/wifiNetworks/query", controller.NewController().QueryWifiNetworks)
			queryAPI.POST("/venues/aps/query", controller.NewController().QueryAccessPoints)
		}
	})
}
