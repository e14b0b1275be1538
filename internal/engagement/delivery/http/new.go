package http

import (
	"github.com/gin-gonic/gin"

	"engage-api/internal/engagement"
	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
)

type Handler interface {
	Get(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc engagement.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc engagement.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
