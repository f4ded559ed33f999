package handlers

import (
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/dto"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) FutureValue(c *gin.Context) {
	var req dto.FutureValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	fv, err := h.standardizer.FutureValue(req.PresentValue, req.Periods, rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	periodic, err := h.standardizer.PeriodicRate(rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FutureValueResponse{
		PresentValue: req.PresentValue,
		Periods:      req.Periods,
		PeriodicRate: periodic,
		FutureValue:  fv,
	})
}

func (h *Handler) SimpleSeries(c *gin.Context) {
	h.series(c, "simple", h.standardizer.SimpleSeries)
}

func (h *Handler) CompoundSeries(c *gin.Context) {
	h.series(c, "compound", h.standardizer.CompoundSeries)
}

func (h *Handler) series(c *gin.Context, kind string, build func(float64, domain.Rate, int) ([]domain.SeriesPoint, error)) {
	var req dto.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	points, err := build(req.Principal, rate, req.Periods)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeriesResponse{Kind: kind, Points: points})
}
