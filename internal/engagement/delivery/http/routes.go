package http

import "github.com/gin-gonic/gin"

// MapPostedRoutes registers the posted history endpoints on an
// authenticated router group.
func MapPostedRoutes(r *gin.RouterGroup, h Handler) {
	r.GET("", h.Get)
	r.POST("/refresh", h.Refresh)
}
