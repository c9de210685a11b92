package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/msp-tools/tenant-console/internal/auth/handler"
)

const (
	// ContextKeyOperatorEmail is where the validated session email lands.
	ContextKeyOperatorEmail = "operatorEmail"
	// ContextKeyOperatorRole is where the validated session role lands.
	ContextKeyOperatorRole = "operatorRole"
)

// SessionAuth validates the console session JWT carried in the
// Authorization header and injects the operator identity into the gin
// context. Upstream bearer tokens travel in a separate header and are
// not touched here.
func SessionAuth(jwtSigningKey string) gin.HandlerFunc {
	key := []byte(jwtSigningKey)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		claims := &handler.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
			return
		}

		c.Set(ContextKeyOperatorEmail, claims.Email)
		c.Set(ContextKeyOperatorRole, claims.Role)
		c.Next()
	}
}

// OperatorEmail reads the validated session email from the context.
func OperatorEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextKeyOperatorEmail); exists {
		if emailStr, ok := email.(string); ok {
			return emailStr
		}
	}
	return ""
}
