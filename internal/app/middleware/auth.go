package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
)

// AuthHeader is the request header carrying the session token.
const AuthHeader = "X-Auth-Token"

const callerKey = "auth_caller"

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the guard to the shared auth service. Must be
// called before the router is built.
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// Authenticate rejects any request whose X-Auth-Token header does not
// resolve to an active session. Every failure returns the same generic 401;
// the response never says whether the token was absent, malformed, expired
// or revoked.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(AuthHeader)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		caller, _, err := jwtService.Authenticate(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(callerKey, *caller)
		c.Next()
	}
}

// GetCaller returns the authenticated principal stored by Authenticate.
func GetCaller(c *gin.Context) (services.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return services.Caller{}, false
	}
	caller, ok := v.(services.Caller)
	return caller, ok
}
