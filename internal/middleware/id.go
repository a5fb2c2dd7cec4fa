package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
)

const ContextKeyID = "id"

// RequireID parses the :id path parameter as a positive integer and stores
// it in the context. Anything else is rejected with 400.
func RequireID(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.BadRequest(c, "Invalid "+resource+" ID")
			c.Abort()
			return
		}

		c.Set(ContextKeyID, id)
		c.Next()
	}
}

// GetID retrieves the path id stored by RequireID
func GetID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextKeyID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
