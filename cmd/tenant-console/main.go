package main

import (
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/audit"
	auditRouter "github.com/msp-tools/tenant-console/internal/audit/router"
	authHandler "github.com/msp-tools/tenant-console/internal/auth/handler"
	authRouter "github.com/msp-tools/tenant-console/internal/auth/router"
	"github.com/msp-tools/tenant-console/internal/configs"
	"github.com/msp-tools/tenant-console/internal/externalcall"
	queryRouter "github.com/msp-tools/tenant-console/internal/query/router"
	tenantRouter "github.com/msp-tools/tenant-console/internal/tenant/router"
	"github.com/msp-tools/tenant-console/pkg/httpframework"
	"github.com/msp-tools/tenant-console/pkg/infra"
	"github.com/msp-tools/tenant-console/pkg/logger"
	"github.com/msp-tools/tenant-console/pkg/metric"
)

var appConfig configs.Configs

func main() {
	configs.InitConfig(&appConfig)

	logger.Init(appConfig)

	// Database initialization (operator accounts + call log)
	infra.InitDBConnectors(appConfig)

	metric.Init(appConfig)

	externalcall.InitTenantAPIClient(appConfig.GatewayTimeoutSeconds)
	audit.InitRecorder(appConfig.CallLogRetentionEntries)
	authHandler.InitAuthHandler(appConfig.JwtSigningKey)

	corsConfig := cors.DefaultConfig()
	if appConfig.ConsoleFrontendOrigin != "" {
		corsConfig.AllowOrigins = []string{appConfig.ConsoleFrontendOrigin}
	} else {
		corsConfig.AllowOrigins = []string{"*"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Api-Base-Url", "X-Upstream-Token", "x-rks-tenantid"}
	corsConfig.AllowCredentials = true
	httpframework.Init(cors.New(corsConfig))

	authRouter.Init()
	tenantRouter.Init(appConfig)
	queryRouter.Init(appConfig)
	auditRouter.Init(appConfig)

	// Use default port if not set (for local testing)
	port := appConfig.AppPort
	if port == 0 {
		port = 8082
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 8082")
	}
	httpframework.Instance().Run(":" + strconv.Itoa(port))
}
