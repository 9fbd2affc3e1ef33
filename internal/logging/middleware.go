package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Middleware logs one line per handled request. Fields match the access-log
// schema used by the rest of the service so log queries can join on them.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()

		c.Next()

		L.Info("handled request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("remoteAddr", c.Request.RemoteAddr),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("elapsed", time.Since(begin)),
		)
	}
}
