package dto

// PaymentRequest describes a fixed-installment loan.
// PaymentPeriod is months between installments (default 1).
type PaymentRequest struct {
	Amount        float64 `json:"amount" binding:"gt=0"`
	Rate          string  `json:"rate" binding:"required"`
	Periods       int     `json:"periods" binding:"gt=0,max=1200"`
	PaymentPeriod int     `json:"payment_period" binding:"omitempty,min=1,max=12"`
}

// InvestmentReturnRequest projects an investment over Months on a 360-day year
type InvestmentReturnRequest struct {
	Investment float64 `json:"investment" binding:"gt=0"`
	Rate       string  `json:"rate" binding:"required"`
	Months     int     `json:"months" binding:"gte=0,max=1200"`
}

type PaymentResponse struct {
	Amount        float64 `json:"amount"`
	Periods       int     `json:"periods"`
	PaymentPeriod int     `json:"payment_period"`
	Payment       float64 `json:"payment"`
}
