package handlers

import (
	"net/http"
	"strconv"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/dto"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CompareCredit(c *gin.Context) {
	h.compare(c, domain.ModeCredit)
}

func (h *Handler) CompareInvestment(c *gin.Context) {
	h.compare(c, domain.ModeInvestment)
}

func (h *Handler) compare(c *gin.Context, mode domain.ComparisonMode) {
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

	ranking, err := h.comparatorSvc.Compare(c.Request.Context(), opts, mode)
	if err != nil {
		log.WithError(err).WithField("mode", mode).Error("compare options failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRankingResponse(ranking))
}

func (h *Handler) ListRankings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.RankingListFilter{Limit: limit, Offset: offset}
	if m := c.Query("mode"); m != "" {
		mode, err := domain.ParseComparisonMode(m)
		if err != nil {
			mapDomainError(c, err)
			return
		}
		filter.Mode = mode
	}

	filter = services.NormalizeListFilter(filter)
	rankings, total, err := h.comparatorSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list rankings failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.RankingResponse, 0, len(rankings))
	for _, r := range rankings {
		items = append(items, dto.ToRankingResponse(r))
	}

	c.JSON(http.StatusOK, dto.ListRankingsResponse{
		Items:      items,
		Total:      total,
		PageSize:   filter.Limit,
		NextOffset: filter.Offset + len(items),
	})
}

func (h *Handler) GetRanking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ranking id"})
		return
	}

	ranking, err := h.comparatorSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRankingResponse(ranking))
}

func (h *Handler) BestOption(c *gin.Context) {
	best, err := h.comparatorSvc.Best(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, best)
}
