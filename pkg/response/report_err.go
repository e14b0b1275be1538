package response

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"engage-api/pkg/discord"

	"github.com/gin-gonic/gin"
)

const reportTimeout = 10 * time.Second

// captureStackTrace returns a trimmed stack trace for error reports.
func captureStackTrace() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// reportInternalError sends an internal server error report to Discord asynchronously.
// The report never blocks the response path.
func reportInternalError(c *gin.Context, d discord.IDiscord, err error) {
	description := fmt.Sprintf("**Method**: %s\n**Path**: %s\n**Error**: %v",
		c.Request.Method, c.Request.URL.Path, err)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		// Best effort only.
		_ = d.Alert(ctx, "Internal Server Error", description, discord.ColorRed)
	}()
}

// reportPanic sends a recovered panic report to Discord asynchronously.
func reportPanic(c *gin.Context, d discord.IDiscord, recovered any) {
	stack := captureStackTrace()
	if len(stack) > 1200 {
		stack = stack[:1200]
	}
	description := fmt.Sprintf("**Method**: %s\n**Path**: %s\n**Panic**: %v\n```%s```",
		c.Request.Method, c.Request.URL.Path, recovered, stack)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		_ = d.Alert(ctx, "Panic Recovered", description, discord.ColorRed)
	}()
}
