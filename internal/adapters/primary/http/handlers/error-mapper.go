package handlers

import (
	"errors"
	"net/http"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrRankingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrEmptyRate),
		errors.Is(err, domain.ErrUnrecognizedRate),
		errors.Is(err, domain.ErrRateBelowFloor),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidRateKind),
		errors.Is(err, domain.ErrInvalidNominalPeriod),
		errors.Is(err, domain.ErrInvalidAnticipated),
		errors.Is(err, domain.ErrNegativePrecision),
		errors.Is(err, domain.ErrNoOptions),
		errors.Is(err, domain.ErrOptionMissingRate),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPeriods),
		errors.Is(err, domain.ErrResultOverflow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrNewsFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrNewsUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
