package middleware

import (
	"github.com/gin-gonic/gin"

	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/response"
)

// Recovery converts panics into 500 responses and reports them.
func Recovery(logger pkgLog.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
