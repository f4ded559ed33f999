package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// DefaultMoneyRound is the number of decimals kept on money amounts.
const DefaultMoneyRound = 2

// Standardizer reduces rates to comparable figures and builds growth
// series for charts.
type Standardizer struct {
	converter  *Converter
	precision  int
	moneyRound int
}

func NewStandardizer(precision, moneyRound int) (*Standardizer, error) {
	if precision < 0 {
		return nil, domain.ErrNegativePrecision
	}
	if moneyRound < 0 {
		return nil, fmt.Errorf("money rounding: %w", domain.ErrNegativePrecision)
	}
	conv, err := NewConverter(precision)
	if err != nil {
		return nil, err
	}
	return &Standardizer{converter: conv, precision: precision, moneyRound: moneyRound}, nil
}

func (s *Standardizer) Converter() *Converter {
	return s.converter
}

func (s *Standardizer) PeriodicRate(rate domain.Rate) (float64, error) {
	return s.converter.PeriodicRate(rate)
}

func (s *Standardizer) ToEA(rate domain.Rate) (float64, error) {
	return s.converter.ToEA(rate)
}

// ValidateAmountPeriods checks the inputs shared by value and series projections.
func ValidateAmountPeriods(amount float64, periods int) error {
	if math.IsNaN(amount) || amount < 0 {
		return fmt.Errorf("%w: must be >= 0", domain.ErrInvalidAmount)
	}
	if periods < 0 {
		return fmt.Errorf("%w: must be >= 0", domain.ErrInvalidPeriods)
	}
	return nil
}

// StandardizeOptions converts each option to EA, keeping input order.
func (s *Standardizer) StandardizeOptions(options []domain.RateOption) ([]domain.StandardizedOption, error) {
	out := make([]domain.StandardizedOption, 0, len(options))
	for idx, op := range options {
		if op.Rate == nil {
			return nil, fmt.Errorf("option %d: %w", idx, domain.ErrOptionMissingRate)
		}
		ea, err := s.converter.ToEA(*op.Rate)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", idx, err)
		}
		name := op.Name
		if name == "" {
			name = domain.DefaultOptionName
		}
		out = append(out, domain.StandardizedOption{Name: name, EA: ea})
	}
	return out, nil
}

// FutureValue compounds pv over periods expressed in the rate's own period.
func (s *Standardizer) FutureValue(pv float64, periods int, rate domain.Rate) (float64, error) {
	if err := ValidateAmountPeriods(pv, periods); err != nil {
		return 0, err
	}
	i, err := s.converter.PeriodicRate(rate)
	if err != nil {
		return 0, err
	}
	fv := pv * math.Pow(1+i, float64(periods))
	if math.IsInf(fv, 0) {
		return 0, domain.ErrResultOverflow
	}
	return domain.Round(fv, s.moneyRound), nil
}

// SimpleSeries returns P * (1 + i*t) for t = 0..periods.
func (s *Standardizer) SimpleSeries(principal float64, rate domain.Rate, periods int) ([]domain.SeriesPoint, error) {
	return s.series(principal, rate, periods, func(i float64, t int) float64 {
		return 1 + i*float64(t)
	})
}

// CompoundSeries returns P * (1 + i)^t for t = 0..periods.
func (s *Standardizer) CompoundSeries(principal float64, rate domain.Rate, periods int) ([]domain.SeriesPoint, error) {
	return s.series(principal, rate, periods, func(i float64, t int) float64 {
		return math.Pow(1+i, float64(t))
	})
}

func (s *Standardizer) series(principal float64, rate domain.Rate, periods int, factor func(i float64, t int) float64) ([]domain.SeriesPoint, error) {
	if err := ValidateAmountPeriods(principal, periods); err != nil {
		return nil, err
	}
	i, err := s.converter.PeriodicRate(rate)
	if err != nil {
		return nil, err
	}

	points := make([]domain.SeriesPoint, 0, periods+1)
	for t := 0; t <= periods; t++ {
		v := principal * factor(i, t)
		if math.IsInf(v, 0) {
			return nil, domain.ErrResultOverflow
		}
		points = append(points, domain.SeriesPoint{
			Period: t,
			Value:  domain.Round(v, s.moneyRound),
		})
	}
	return points, nil
}

// BestRate picks the cheapest option for credit or the most profitable one
// for investment. It returns nil when there are no options.
func (s *Standardizer) BestRate(options []domain.RateOption, mode domain.ComparisonMode) (*domain.StandardizedOption, error) {
	if mode != domain.ModeCredit && mode != domain.ModeInvestment {
		return nil, domain.ErrInvalidMode
	}
	if len(options) == 0 {
		return nil, nil
	}

	std, err := s.StandardizeOptions(options)
	if err != nil {
		return nil, err
	}
	sortByEA(std, mode)
	best := std[0]
	return &best, nil
}

func sortByEA(opts []domain.StandardizedOption, mode domain.ComparisonMode) {
	sort.SliceStable(opts, func(a, b int) bool {
		if mode == domain.ModeCredit {
			return opts[a].EA < opts[b].EA
		}
		return opts[a].EA > opts[b].EA
	})
}
