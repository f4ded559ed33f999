package handlers

import (
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListNews(c *gin.Context) {
	items, err := h.newsSvc.Get(c.Request.Context(), c.Query("filter"))
	if err != nil {
		log.WithError(err).Warn("list news failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListNewsResponse(items, h.newsSvc.LastUpdate()))
}

func (h *Handler) RefreshNews(c *gin.Context) {
	items, err := h.newsSvc.ForceUpdate(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("refresh news failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListNewsResponse(items, h.newsSvc.LastUpdate()))
}
