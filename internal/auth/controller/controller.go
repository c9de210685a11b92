package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/auth/handler"
)

type Auth interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
}

var (
	auth Auth
	once sync.Once
)

type AuthController struct {
	Authenticator handler.Authenticator
}

func NewController() Auth {
	once.Do(func() {
		auth = &AuthController{
			Authenticator: handler.GetAuthHandler(),
		}
	})
	return auth
}

func (a *AuthController) Register(ctx *gin.Context) {
	var request handler.User
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.Authenticator.Register(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User Registered Successfully"})
}

func (a *AuthController) Login(ctx *gin.Context) {
	var request handler.Login
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := a.Authenticator.Login(&request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, session)
}
