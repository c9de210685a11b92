package router

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/msp-tools/tenant-console/internal/auth/controller"
	"github.com/msp-tools/tenant-console/pkg/httpframework"
)

var initAuthRouterOnce sync.Once

// Init expects http framework to be initialized before calling this function
func Init() {
	initAuthRouterOnce.Do(func() {
		api := httpframework.Instance().Group("/")
		{
			api.POST("/register", controller.NewController().Register)
			api.POST("/login", controller.NewController().Login)
			api.GET("/health", Health)
		}
	})
}

func Health(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Application is up!!!"})
}
