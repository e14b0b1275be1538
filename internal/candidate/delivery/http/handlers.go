package http

import (
	"github.com/gin-gonic/gin"

	"engage-api/internal/candidate"
	"engage-api/internal/model"
	"engage-api/pkg/paginator"
	"engage-api/pkg/response"
	"engage-api/pkg/scope"
)

// Get lists the approval queue.
// @Summary List candidates
// @Description List candidates, pending approval by default. Viewing never mutates candidate state.
// @Tags Candidate
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param monitor_id query string false "Filter by monitor"
// @Param confidence query string false "Filter by confidence"
// @Param status query string false "Filter by status (default PENDING_APPROVAL)"
// @Param sort_by query string false "Sort key: confidence, engagement or recency"
// @Success 200 {object} response.Resp{data=getCandidatesResp}
// @Router /api/v1/candidates [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getCandidatesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.candidate.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Get(ctx, sc, candidate.GetInput{
		Filter: candidate.Filter{
			MonitorID:  req.MonitorID,
			Confidence: model.Confidence(req.Confidence),
			Status:     model.CandidateStatus(req.Status),
		},
		SortBy: req.SortBy,
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newGetCandidatesResp(out))
}

// Detail returns one candidate.
// @Summary Candidate detail
// @Tags Candidate
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} response.Resp{data=candidateResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/candidates/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newCandidateResp(out.Candidate))
}

// Approve approves a candidate and synchronously attempts the publish.
// @Summary Approve candidate
// @Description Approve and publish. The response carries the publish outcome: POSTED, or POST_FAILED with a reason.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param body body approveReq false "Optional operator edit"
// @Success 200 {object} response.Resp{data=candidateResp}
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp "Already decided"
// @Router /api/v1/candidates/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	var req approveReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.candidate.delivery.http.Approve.ShouldBindJSON: %v", err)
			response.Error(c, errWrongBody, h.d)
			return
		}
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Approve(ctx, sc, candidate.ApproveInput{
		ID:         c.Param("id"),
		EditedText: req.EditedText,
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newCandidateResp(out.Candidate))
}

// Reject rejects a pending candidate.
// @Summary Reject candidate
// @Tags Candidate
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} response.Resp{data=candidateResp}
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp "Already decided"
// @Router /api/v1/candidates/{id}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Reject(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, newCandidateResp(out.Candidate))
}

// BulkApprove approves candidates in submission order.
// @Summary Bulk approve candidates
// @Description Process ids in order; per-item outcomes are returned. Items past the pacing budget fail with the gate reason.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param body body bulkApproveReq true "Candidate ids"
// @Success 200 {object} response.Resp{data=candidate.BulkApproveOutput}
// @Router /api/v1/candidates/bulk-approve [POST]
func (h *handler) BulkApprove(c *gin.Context) {
	ctx := c.Request.Context()

	var req bulkApproveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.candidate.delivery.http.BulkApprove.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.BulkApprove(ctx, sc, candidate.BulkApproveInput{IDs: req.IDs})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, out)
}

// ApproveAbove approves all pending candidates at or above a confidence.
// @Summary Approve all above confidence
// @Tags Candidate
// @Accept json
// @Produce json
// @Param body body approveAboveReq true "Confidence threshold"
// @Success 200 {object} response.Resp{data=candidate.BulkApproveOutput}
// @Router /api/v1/candidates/approve-above [POST]
func (h *handler) ApproveAbove(c *gin.Context) {
	ctx := c.Request.Context()

	var req approveAboveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.candidate.delivery.http.ApproveAbove.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.ApproveAllAboveConfidence(ctx, sc, candidate.ApproveAboveInput{
		Threshold: model.Confidence(req.Threshold),
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, out)
}

// Intake triggers a discovery sweep for the workspace.
// @Summary Run intake sweep
// @Description Fetch fresh posts for active monitors, gate, score and enqueue candidates.
// @Tags Candidate
// @Produce json
// @Success 200 {object} response.Resp{data=candidate.IntakeOutput}
// @Router /api/v1/candidates/intake [POST]
func (h *handler) Intake(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Intake(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, out)
}
