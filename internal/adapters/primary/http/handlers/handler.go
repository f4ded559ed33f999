package handlers

import (
	"github.com/proyectos-indefinidos/AnaDec/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	standardizer  *services.Standardizer
	comparatorSvc *services.ComparatorService
	calculatorSvc *services.CalculatorService
	newsSvc       *services.NewsService
}

func New(
	standardizer *services.Standardizer,
	comparatorSvc *services.ComparatorService,
	calculatorSvc *services.CalculatorService,
	newsSvc *services.NewsService,
) *Handler {
	return &Handler{
		standardizer:  standardizer,
		comparatorSvc: comparatorSvc,
		calculatorSvc: calculatorSvc,
		newsSvc:       newsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Rates
	r.POST("/rates/parse", h.ParseRate)
	r.POST("/rates/convert", h.ConvertRate)
	r.POST("/rates/nominal", h.NominalRate)
	r.POST("/rates/standardize", h.StandardizeRates)
	r.POST("/rates/best", h.BestRate)

	// Comparisons (rankings)
	r.POST("/comparisons/credit", h.CompareCredit)
	r.POST("/comparisons/investment", h.CompareInvestment)
	r.GET("/comparisons", h.ListRankings)
	r.GET("/comparisons/best", h.BestOption)
	r.GET("/comparisons/:id", h.GetRanking)

	// Projections
	r.POST("/projections/future-value", h.FutureValue)
	r.POST("/projections/simple", h.SimpleSeries)
	r.POST("/projections/compound", h.CompoundSeries)

	// Calculator
	r.POST("/calculator/payment", h.FixedPayment)
	r.POST("/calculator/amortization", h.AmortizationSchedule)
	r.POST("/calculator/investment-return", h.InvestmentReturn)

	// News
	r.GET("/news", h.ListNews)
	r.POST("/news/refresh", h.RefreshNews)
}
