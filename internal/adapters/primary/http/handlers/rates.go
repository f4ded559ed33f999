package handlers

import (
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/dto"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ParseRate(c *gin.Context) {
	var req dto.ParseRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	periodic, err := h.standardizer.PeriodicRate(rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	ea, err := h.standardizer.ToEA(rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	effective, err := h.standardizer.Converter().NominalToEffective(rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{Rate: rate, Effective: effective, PeriodicRate: periodic, EA: ea})
}

func (h *Handler) ConvertRate(c *gin.Context) {
	var req dto.ConvertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	converted, err := h.standardizer.Converter().ChangeFrequency(rate, req.TargetPeriod)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertRateResponse{From: rate, To: converted})
}

func (h *Handler) NominalRate(c *gin.Context) {
	var req dto.NominalRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	nominalPeriod := req.NominalPeriod
	if nominalPeriod == 0 {
		nominalPeriod = 12
	}

	compounding := req.CompoundingPeriod
	if compounding == 0 {
		compounding = rate.Period
	}

	// Nominal quotes are built from the due effective rate of the compounding period.
	effective, err := h.standardizer.Converter().ChangeFrequency(rate, compounding)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	nominal, err := h.standardizer.Converter().EffectiveToNominal(effective, nominalPeriod)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertRateResponse{From: rate, To: nominal})
}

func (h *Handler) StandardizeRates(c *gin.Context) {
	var req dto.OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := dto.ToRateOptions(req.Options)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items, err := h.standardizer.StandardizeOptions(opts)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StandardizeResponse{Items: items})
}

func (h *Handler) BestRate(c *gin.Context) {
	var req dto.BestRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modeName := req.Mode
	if modeName == "" {
		modeName = string(domain.ModeCredit)
	}
	mode, err := domain.ParseComparisonMode(modeName)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	opts, err := dto.ToRateOptions(req.Options)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	best, err := h.standardizer.BestRate(opts, mode)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BestRateResponse{Mode: string(mode), Best: best})
}
