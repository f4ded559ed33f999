package handlers

import (
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/adapters/primary/http/dto"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/services"

	"github.com/gin-gonic/gin"
)

func bindPayment(c *gin.Context) (services.PaymentRequest, bool) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.PaymentRequest{}, false
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return services.PaymentRequest{}, false
	}

	paymentPeriod := req.PaymentPeriod
	if paymentPeriod == 0 {
		paymentPeriod = 1
	}
	return services.PaymentRequest{
		Amount:        req.Amount,
		Rate:          rate,
		Periods:       req.Periods,
		PaymentPeriod: paymentPeriod,
	}, true
}

func (h *Handler) FixedPayment(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}

	payment, err := h.calculatorSvc.FixedPayment(req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{
		Amount:        req.Amount,
		Periods:       req.Periods,
		PaymentPeriod: req.PaymentPeriod,
		Payment:       payment,
	})
}

func (h *Handler) AmortizationSchedule(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}

	sched, err := h.calculatorSvc.AmortizationSchedule(req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, sched)
}

func (h *Handler) InvestmentReturn(c *gin.Context) {
	var req dto.InvestmentReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := domain.ParseRate(req.Rate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	result, err := h.calculatorSvc.InvestmentReturn(req.Investment, rate, req.Months)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
