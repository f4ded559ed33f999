package services

import (
	"fmt"
	"math"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// DefaultPrecision is the number of decimals kept on converted rates.
const DefaultPrecision = 6

// Converter converts rates between nominal, effective and periodic forms.
type Converter struct {
	precision int
}

func NewConverter(precision int) (*Converter, error) {
	if precision < 0 {
		return nil, domain.ErrNegativePrecision
	}
	return &Converter{precision: precision}, nil
}

// PeriodicRate returns the due ("vencida") effective rate per rate.Period.
//
// Effective rates are taken as is. Nominal rates are split over the
// m = NominalPeriod / Period compounding periods they contain. Anticipated
// rates are then turned into due rates with i = d / (1 - d).
func (c *Converter) PeriodicRate(rate domain.Rate) (float64, error) {
	i, err := c.periodicRate(rate)
	if err != nil {
		return 0, err
	}
	return domain.Round(i, c.precision), nil
}

func (c *Converter) periodicRate(rate domain.Rate) (float64, error) {
	if err := rate.Validate(); err != nil {
		return 0, err
	}

	i := rate.Value
	if rate.IsNominal() {
		m := float64(rate.NominalPeriod) / float64(rate.Period)
		i = rate.Value / m
	}

	if rate.Anticipated {
		if i >= 1 {
			return 0, domain.ErrInvalidAnticipated
		}
		i = i / (1 - i)
	}
	return i, nil
}

// NominalToEffective returns the due effective rate for the compounding
// period of rate. Effective due rates come back unchanged.
func (c *Converter) NominalToEffective(rate domain.Rate) (domain.Rate, error) {
	i, err := c.PeriodicRate(rate)
	if err != nil {
		return domain.Rate{}, err
	}
	return domain.NewRate(i, rate.Period, string(domain.RateKindEffective), false, 0)
}

// ToEA converts any rate to effective annual.
func (c *Converter) ToEA(rate domain.Rate) (float64, error) {
	ea, err := c.toEA(rate)
	if err != nil {
		return 0, err
	}
	return domain.Round(ea, c.precision), nil
}

func (c *Converter) toEA(rate domain.Rate) (float64, error) {
	i, err := c.periodicRate(rate)
	if err != nil {
		return 0, err
	}
	ea := math.Pow(1+i, 12.0/float64(rate.Period)) - 1
	if math.IsInf(ea, 0) {
		return 0, domain.ErrResultOverflow
	}
	return ea, nil
}

// ChangeFrequency returns the due effective rate equivalent to rate over
// periods of newPeriod months.
func (c *Converter) ChangeFrequency(rate domain.Rate, newPeriod int) (domain.Rate, error) {
	if newPeriod <= 0 {
		return domain.Rate{}, domain.ErrInvalidPeriod
	}
	ea, err := c.toEA(rate)
	if err != nil {
		return domain.Rate{}, err
	}
	i := math.Pow(1+ea, float64(newPeriod)/12.0) - 1
	return domain.NewRate(domain.Round(i, c.precision), newPeriod, string(domain.RateKindEffective), false, 0)
}

// EffectiveToNominal quotes rate as a nominal due rate over nominalPeriod
// months, compounded every rate.Period months.
func (c *Converter) EffectiveToNominal(rate domain.Rate, nominalPeriod int) (domain.Rate, error) {
	i, err := c.periodicRate(rate)
	if err != nil {
		return domain.Rate{}, err
	}
	if nominalPeriod < rate.Period {
		return domain.Rate{}, fmt.Errorf("%w: %d < %d", domain.ErrInvalidNominalPeriod, nominalPeriod, rate.Period)
	}
	j := i * float64(nominalPeriod) / float64(rate.Period)
	return domain.NewRate(domain.Round(j, c.precision), rate.Period, string(domain.RateKindNominal), false, nominalPeriod)
}
