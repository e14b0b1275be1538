package http

import (
	"time"

	"engage-api/internal/model"
	"engage-api/internal/monitor"
	"engage-api/pkg/paginator"
)

type autoApproveReq struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type antiDetectionReq struct {
	MinExistingComments int `json:"min_existing_comments"`
	MinPostReactions    int `json:"min_post_reactions"`
	MinPostAgeMinutes   int `json:"min_post_age_minutes"`
	MaxPostAgeHours     int `json:"max_post_age_hours"`
	DailyLimit          int `json:"daily_limit"`
	MinDelayMinutes     int `json:"min_delay_minutes"`
}

type monitorConfigReq struct {
	Name           string           `json:"name"`
	TargetMode     string           `json:"target_mode"`
	TargetValues   []string         `json:"target_values"`
	Keywords       []string         `json:"keywords"`
	Timezone       string           `json:"timezone"`
	DailyStartTime string           `json:"daily_start_time"`
	SkipWeekends   bool             `json:"skip_weekends"`
	AutoApprove    autoApproveReq   `json:"auto_approve"`
	AntiDetection  antiDetectionReq `json:"anti_detection"`
}

func (req monitorConfigReq) toConfig() monitor.Config {
	return monitor.Config{
		Name:           req.Name,
		TargetMode:     model.TargetMode(req.TargetMode),
		TargetValues:   req.TargetValues,
		Keywords:       req.Keywords,
		Timezone:       req.Timezone,
		DailyStartTime: req.DailyStartTime,
		SkipWeekends:   req.SkipWeekends,
		AutoApprove: model.AutoApprove{
			Enabled:   req.AutoApprove.Enabled,
			StartTime: req.AutoApprove.StartTime,
			EndTime:   req.AutoApprove.EndTime,
		},
		AntiDetection: model.AntiDetection{
			MinExistingComments: req.AntiDetection.MinExistingComments,
			MinPostReactions:    req.AntiDetection.MinPostReactions,
			MinPostAgeMinutes:   req.AntiDetection.MinPostAgeMinutes,
			MaxPostAgeHours:     req.AntiDetection.MaxPostAgeHours,
			DailyLimit:          req.AntiDetection.DailyLimit,
			MinDelayMinutes:     req.AntiDetection.MinDelayMinutes,
		},
	}
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type getMonitorsReq struct {
	IDs    []string `form:"ids"`
	Status string   `form:"status"`
	paginator.PaginateQuery
}

type monitorResp struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	TargetMode     string           `json:"target_mode"`
	TargetValues   []string         `json:"target_values"`
	Keywords       []string         `json:"keywords,omitempty"`
	Status         string           `json:"status"`
	Timezone       string           `json:"timezone"`
	DailyStartTime string           `json:"daily_start_time,omitempty"`
	SkipWeekends   bool             `json:"skip_weekends"`
	AutoApprove    autoApproveReq   `json:"auto_approve"`
	AntiDetection  antiDetectionReq `json:"anti_detection"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func newMonitorResp(m model.Monitor) monitorResp {
	return monitorResp{
		ID:             m.ID,
		Name:           m.Name,
		TargetMode:     string(m.TargetMode),
		TargetValues:   m.TargetValues,
		Keywords:       m.Keywords,
		Status:         string(m.Status),
		Timezone:       m.Timezone,
		DailyStartTime: m.DailyStartTime,
		SkipWeekends:   m.SkipWeekends,
		AutoApprove: autoApproveReq{
			Enabled:   m.AutoApprove.Enabled,
			StartTime: m.AutoApprove.StartTime,
			EndTime:   m.AutoApprove.EndTime,
		},
		AntiDetection: antiDetectionReq{
			MinExistingComments: m.AntiDetection.MinExistingComments,
			MinPostReactions:    m.AntiDetection.MinPostReactions,
			MinPostAgeMinutes:   m.AntiDetection.MinPostAgeMinutes,
			MaxPostAgeHours:     m.AntiDetection.MaxPostAgeHours,
			DailyLimit:          m.AntiDetection.DailyLimit,
			MinDelayMinutes:     m.AntiDetection.MinDelayMinutes,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type getMonitorsResp struct {
	Items     []monitorResp                `json:"items"`
	Paginator paginator.PaginatorResponse  `json:"paginator"`
}

func newGetMonitorsResp(out monitor.GetMonitorOutput) getMonitorsResp {
	items := make([]monitorResp, len(out.Monitors))
	for i, m := range out.Monitors {
		items[i] = newMonitorResp(m)
	}
	return getMonitorsResp{
		Items:     items,
		Paginator: out.Paginator.ToResponse(),
	}
}
