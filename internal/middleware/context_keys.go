package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// actorKey is the key used to store the authenticated caller in the request context.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated caller from the Gin context.
// It returns the actor and a boolean indicating if one was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal := c.Request.Context().Value(actorKey)
	if actorVal == nil {
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		// Should not happen if the identity middleware sets it correctly.
		return domain.Actor{}, false
	}

	return actor, true
}
