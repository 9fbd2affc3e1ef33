package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal/logging"
)

// TimeoutMiddleware adds a timeout to the request context.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// DatabaseMiddleware wraps the request in a database transaction. The
// transaction is rolled back when the handler responds with an error status,
// so a failed request never leaves partial writes behind.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			c.Set("db", tx)
			c.Next()

			if status := c.Writer.Status(); status >= 400 {
				return fmt.Errorf("request failed with status %d", status)
			}
			return nil
		})
		if err != nil {
			logging.Debugf("transaction rolled back: %s", err)
		}
	}
}

// getDB returns the transaction for the request set by DatabaseMiddleware.
func getDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		panic("db middleware not configured")
	}
	return db
}
