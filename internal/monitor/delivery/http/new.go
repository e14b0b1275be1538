package http

import (
	"github.com/gin-gonic/gin"

	"engage-api/internal/monitor"
	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
)

type Handler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Detail(c *gin.Context)
	Get(c *gin.Context)
	SetStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc monitor.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc monitor.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
