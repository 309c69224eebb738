package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

const actorKey = "actor"

// JWTAuthMiddleware rejects requests without a valid Bearer token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, 4001, "missing Authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, http.StatusUnauthorized, 4002, "malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, 4003, "invalid token")
			c.Abort()
			return
		}
		c.Set(actorKey, services.Actor{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// JWTTryAuthMiddleware parses the token when present but never rejects, for
// public endpoints that render more data to admins.
func JWTTryAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := utils.ParseToken(parts[1]); err == nil {
				c.Set(actorKey, services.Actor{ID: claims.UserID, Role: claims.Role})
			}
		}
		c.Next()
	}
}

// RoleAuthMiddleware allows only the given roles past.
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, 4001, "authentication required")
			c.Abort()
			return
		}

		for _, role := range requiredRoles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		utils.Error(c, http.StatusForbidden, 4030, "insufficient permissions")
		c.Abort()
	}
}

// GetActor returns the authenticated actor stored by the auth middlewares.
func GetActor(c *gin.Context) (services.Actor, bool) {
	val, exists := c.Get(actorKey)
	if !exists {
		return services.Actor{}, false
	}
	actor, ok := val.(services.Actor)
	return actor, ok
}
