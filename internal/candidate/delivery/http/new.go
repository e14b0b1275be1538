package http

import (
	"github.com/gin-gonic/gin"

	"engage-api/internal/candidate"
	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
)

type Handler interface {
	Get(c *gin.Context)
	Detail(c *gin.Context)
	Approve(c *gin.Context)
	Reject(c *gin.Context)
	BulkApprove(c *gin.Context)
	ApproveAbove(c *gin.Context)
	Intake(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc candidate.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc candidate.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
