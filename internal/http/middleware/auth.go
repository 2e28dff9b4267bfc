package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

const actorKey = "planline/actor"

// Auth resolves the Authorization bearer credential into an Actor and aborts
// with 401 when that fails. Tenancy decisions stay in the service guard; this
// only establishes identity.
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		actor, err := auth.ResolveActor(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// CurrentActor returns the actor established by Auth, or nil outside it.
func CurrentActor(c *gin.Context) *model.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*model.Actor)
	if !ok {
		return nil
	}
	return actor
}
