package http

import "github.com/gin-gonic/gin"

// MapMonitorRoutes registers the monitor endpoints on an authenticated
// router group.
func MapMonitorRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("", h.Create)
	r.GET("", h.Get)
	r.GET("/:id", h.Detail)
	r.PUT("/:id", h.Update)
	r.PATCH("/:id/status", h.SetStatus)
	r.DELETE("/:id", h.Delete)
}
