package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"engage-api/internal/engagement"
	pkgErrors "engage-api/pkg/errors"
	"engage-api/pkg/paginator"
	"engage-api/pkg/response"
	"engage-api/pkg/scope"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body", http.StatusBadRequest)

// Get lists posted comments with their latest engagement counts.
// @Summary List posted comments
// @Tags Posted
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param monitor_id query string false "Filter by monitor"
// @Success 200 {object} response.Resp{data=getPostedResp}
// @Router /api/v1/posted [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getPostedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.engagement.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Get(ctx, sc, engagement.GetInput{
		Filter: engagement.Filter{MonitorID: req.MonitorID},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	})
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newGetPostedResp(out))
}

// Refresh triggers an engagement refresh sweep.
// @Summary Refresh engagement counts
// @Description Re-read like/reply counts for stale posted comments. Partial failures are reported per record.
// @Tags Posted
// @Accept json
// @Produce json
// @Param body body refreshReq false "Sweep options"
// @Success 200 {object} response.Resp{data=engagement.RefreshSweepOutput}
// @Router /api/v1/posted/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req refreshReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.engagement.delivery.http.Refresh.ShouldBindJSON: %v", err)
			response.Error(c, errWrongBody, h.d)
			return
		}
	}

	out, err := h.uc.RefreshSweep(ctx, engagement.RefreshSweepInput{
		MinStaleness: time.Duration(req.MinStalenessMinutes) * time.Minute,
	})
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, out)
}
