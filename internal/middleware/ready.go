package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/lovacko/pkg/responses"
)

// ReadinessChecker is satisfied by the competition store.
type ReadinessChecker interface {
	Ready() bool
}

// RequireReady answers 503 until the store has received its first snapshot.
func RequireReady(store ReadinessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Ready() {
			responses.ServiceUnavailable(c, "Competition data is still loading")
			return
		}
		c.Next()
	}
}
