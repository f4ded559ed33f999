package services

import (
	"fmt"
	"math"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// Commercial calendar used by Colombian banking: 360-day years of 30-day months.
const (
	DaysPerYear  = 360
	DaysPerMonth = 30
)

// CalculatorService projects how time turns into money: loan installments,
// amortization plans and investment returns.
type CalculatorService struct {
	converter  *Converter
	moneyRound int
}

func NewCalculatorService(standardizer *Standardizer) *CalculatorService {
	return &CalculatorService{
		converter:  standardizer.converter,
		moneyRound: standardizer.moneyRound,
	}
}

// PaymentRequest describes a fixed-installment loan. PaymentPeriod is the
// number of months between installments and defaults to monthly.
type PaymentRequest struct {
	Amount        float64
	Rate          domain.Rate
	Periods       int
	PaymentPeriod int
}

func (r *PaymentRequest) normalize() error {
	if r.PaymentPeriod == 0 {
		r.PaymentPeriod = 1
	}
	if r.PaymentPeriod < 0 {
		return domain.ErrInvalidPeriod
	}
	if math.IsNaN(r.Amount) || r.Amount <= 0 {
		return fmt.Errorf("%w: must be > 0", domain.ErrInvalidAmount)
	}
	if r.Periods <= 0 {
		return fmt.Errorf("%w: must be > 0", domain.ErrInvalidPeriods)
	}
	return nil
}

func (s *CalculatorService) periodicRate(req PaymentRequest) (float64, error) {
	eq, err := s.converter.ChangeFrequency(req.Rate, req.PaymentPeriod)
	if err != nil {
		return 0, err
	}
	return eq.Value, nil
}

// FixedPayment returns the installment A = P*i / (1 - (1+i)^-n).
func (s *CalculatorService) FixedPayment(req PaymentRequest) (float64, error) {
	if err := req.normalize(); err != nil {
		return 0, err
	}
	i, err := s.periodicRate(req)
	if err != nil {
		return 0, err
	}
	return domain.Round(installment(req.Amount, i, req.Periods), s.moneyRound), nil
}

func installment(p, i float64, n int) float64 {
	if i == 0 {
		return p / float64(n)
	}
	return p * i / (1 - math.Pow(1+i, -float64(n)))
}

// AmortizationSchedule builds the French amortization plan. The last row
// takes whatever rounding residue is left so the balance closes at zero.
func (s *CalculatorService) AmortizationSchedule(req PaymentRequest) (*domain.AmortizationSchedule, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	i, err := s.periodicRate(req)
	if err != nil {
		return nil, err
	}

	payment := domain.Round(installment(req.Amount, i, req.Periods), s.moneyRound)
	sched := &domain.AmortizationSchedule{
		Amount:        req.Amount,
		PeriodicRate:  i,
		PaymentPeriod: req.PaymentPeriod,
		Payment:       payment,
		Rows:          make([]domain.AmortizationRow, 0, req.Periods),
	}

	balance := domain.Round(req.Amount, s.moneyRound)
	for t := 1; t <= req.Periods; t++ {
		interest := domain.Round(balance*i, s.moneyRound)
		principal := domain.Round(payment-interest, s.moneyRound)
		pay := payment
		if t == req.Periods {
			principal = balance
			pay = domain.Round(principal+interest, s.moneyRound)
		}
		balance = domain.Round(balance-principal, s.moneyRound)

		sched.Rows = append(sched.Rows, domain.AmortizationRow{
			Period:    t,
			Payment:   pay,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
		sched.TotalPaid += pay
		sched.TotalInterest += interest
		sched.TotalPrincipal += principal
	}

	sched.TotalPaid = domain.Round(sched.TotalPaid, s.moneyRound)
	sched.TotalInterest = domain.Round(sched.TotalInterest, s.moneyRound)
	sched.TotalPrincipal = domain.Round(sched.TotalPrincipal, s.moneyRound)
	return sched, nil
}

// InvestmentReturn compounds an investment at the rate's EA over months
// of the commercial calendar.
func (s *CalculatorService) InvestmentReturn(investment float64, rate domain.Rate, months int) (*domain.InvestmentReturn, error) {
	if math.IsNaN(investment) || investment <= 0 {
		return nil, fmt.Errorf("%w: must be > 0", domain.ErrInvalidAmount)
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: must be >= 0", domain.ErrInvalidPeriods)
	}
	ea, err := s.converter.ToEA(rate)
	if err != nil {
		return nil, err
	}

	days := months * DaysPerMonth
	fv := investment * math.Pow(1+ea, float64(days)/DaysPerYear)
	if math.IsInf(fv, 0) {
		return nil, domain.ErrResultOverflow
	}
	gain := fv - investment

	return &domain.InvestmentReturn{
		Investment: investment,
		Months:     months,
		Days:       days,
		EA:         ea,
		FinalValue: domain.Round(fv, s.moneyRound),
		Gain:       domain.Round(gain, s.moneyRound),
		ROI:        domain.Round(gain/investment, s.converter.precision),
	}, nil
}
