package http

import "github.com/gin-gonic/gin"

// MapCandidateRoutes registers the candidate queue endpoints on an
// authenticated router group. Static segments go before the id wildcard.
func MapCandidateRoutes(r *gin.RouterGroup, h Handler) {
	r.GET("", h.Get)
	r.POST("/intake", h.Intake)
	r.POST("/bulk-approve", h.BulkApprove)
	r.POST("/approve-above", h.ApproveAbove)
	r.GET("/:id", h.Detail)
	r.POST("/:id/approve", h.Approve)
	r.POST("/:id/reject", h.Reject)
}
