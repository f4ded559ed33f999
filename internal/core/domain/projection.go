package domain

// SeriesPoint is a value at period t, ready for charting.
type SeriesPoint struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

// AmortizationRow is one installment of a French amortization schedule.
type AmortizationRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule is a full fixed-installment loan plan.
type AmortizationSchedule struct {
	Amount         float64           `json:"amount"`
	PeriodicRate   float64           `json:"periodic_rate"`
	PaymentPeriod  int               `json:"payment_period"`
	Payment        float64           `json:"payment"`
	Rows           []AmortizationRow `json:"rows"`
	TotalPaid      float64           `json:"total_paid"`
	TotalInterest  float64           `json:"total_interest"`
	TotalPrincipal float64           `json:"total_principal"`
}

// InvestmentReturn is the projection of an investment over a commercial year base.
type InvestmentReturn struct {
	Investment float64 `json:"investment"`
	Months     int     `json:"months"`
	Days       int     `json:"days"`
	EA         float64 `json:"ea"`
	FinalValue float64 `json:"final_value"`
	Gain       float64 `json:"gain"`
	ROI        float64 `json:"roi"`
}
