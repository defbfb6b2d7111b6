package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/net/resp"
)

// Recovery turns a panic into the generic 500 response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered", "error", fmt.Sprint(recovered), "path", c.Request.URL.Path)
		resp.Fail(c.Writer, resp.InternalServer(""))
		c.Abort()
	})
}
