package handler

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/repositories/sql/user"
	"github.com/msp-tools/tenant-console/pkg/infra"
)

// Authenticator manages console operator accounts and sessions.
type Authenticator interface {
	Register(u *User) error
	Login(l *Login) (*LoginResponse, error)
}

var (
	authenticator Authenticator
	authOnce      sync.Once
)

// InitAuthHandler wires the authenticator against the shared SQL
// connection. The signing key is used for session JWTs.
func InitAuthHandler(jwtSigningKey string) Authenticator {
	authOnce.Do(func() {
		connection, err := infra.SQL.GetConnection()
		if err != nil {
			log.Error().Err(err).Msg("Error in getting SQL connection for auth")
			return
		}
		sqlConn := connection.(*infra.SQLConnection)
		userRepo, err := user.NewRepository(sqlConn)
		if err != nil {
			log.Error().Msgf("Error in creating user repository")
		}
		authenticator = &AuthHandler{
			userRepo: userRepo,
			jwtKey:   []byte(jwtSigningKey),
		}
	})
	return authenticator
}

// GetAuthHandler returns the initialized authenticator.
func GetAuthHandler() Authenticator {
	if authenticator == nil {
		log.Fatal().Msg("Auth handler not initialized")
	}
	return authenticator
}
