package http

import (
	"github.com/gin-gonic/gin"

	"engage-api/internal/model"
	"engage-api/internal/monitor"
	"engage-api/pkg/paginator"
	"engage-api/pkg/response"
	"engage-api/pkg/scope"
)

// Create creates a monitor.
// @Summary Create monitor
// @Description Create a new targeting monitor in the caller's workspace
// @Tags Monitor
// @Accept json
// @Produce json
// @Param body body monitorConfigReq true "Monitor config"
// @Success 200 {object} response.Resp{data=monitorResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/monitors [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req monitorConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Create(ctx, sc, monitor.CreateInput{Config: req.toConfig()})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newMonitorResp(out.Monitor))
}

// Update replaces a monitor's config.
// @Summary Update monitor
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Param body body monitorConfigReq true "Monitor config"
// @Success 200 {object} response.Resp{data=monitorResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/monitors/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req monitorConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Update(ctx, sc, monitor.UpdateInput{
		ID:     c.Param("id"),
		Config: req.toConfig(),
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newMonitorResp(out.Monitor))
}

// Detail returns one monitor.
// @Summary Monitor detail
// @Tags Monitor
// @Produce json
// @Param id path string true "Monitor ID"
// @Success 200 {object} response.Resp{data=monitorResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/monitors/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newMonitorResp(out.Monitor))
}

// Get lists monitors with pagination.
// @Summary List monitors
// @Tags Monitor
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Resp{data=getMonitorsResp}
// @Router /api/v1/monitors [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getMonitorsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Get(ctx, sc, monitor.GetInput{
		Filter: monitor.Filter{
			IDs:    req.IDs,
			Status: model.MonitorStatus(req.Status),
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newGetMonitorsResp(out))
}

// SetStatus pauses or resumes a monitor.
// @Summary Pause or resume monitor
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Param body body setStatusReq true "New status"
// @Success 200 {object} response.Resp{data=monitorResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/monitors/{id}/status [PATCH]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.SetStatus.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.SetStatus(ctx, sc, monitor.SetStatusInput{
		ID:     c.Param("id"),
		Status: model.MonitorStatus(req.Status),
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newMonitorResp(out.Monitor))
}

// Delete removes a monitor.
// @Summary Delete monitor
// @Description Delete a monitor. Refused while the monitor still owns pending candidates; pause it instead.
// @Tags Monitor
// @Produce json
// @Param id path string true "Monitor ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/monitors/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, nil)
}
