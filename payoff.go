package finsight

import "math"

// Payoff is the amortization estimate for a single debt paid at its minimum
// payment.
type Payoff struct {
	// Months to reach a zero balance. Meaningless when Never is true.
	Months int `json:"months"`
	// Never is set when the debt cannot amortize: either no payment is made
	// or the payment does not cover the monthly accruing interest.
	Never bool `json:"never"`
	// TotalInterest paid over the payoff, only when finite and the debt
	// carries interest.
	TotalInterest float64 `json:"totalInterest"`
}

// EstimatePayoff computes the months to pay off a debt at its minimum
// payment using the closed-form amortization formula
//
//	months = ceil( -ln(1 - balance*r/payment) / ln(1+r) )
//
// with r the monthly rate. The ceiling matters: a partial final month still
// requires a payment. A zero-interest debt divides down linearly.
func EstimatePayoff(d Debt) Payoff {
	if d.MinimumPayment <= 0 {
		return Payoff{Never: true}
	}
	if d.Balance <= 0 {
		return Payoff{}
	}
	if d.InterestRate > 0 {
		r := d.InterestRate / 100 / 12
		if d.MinimumPayment <= d.Balance*r {
			// Payment does not outrun the accruing interest.
			return Payoff{Never: true}
		}
		months := int(math.Ceil(-math.Log(1-d.Balance*r/d.MinimumPayment) / math.Log(1+r)))
		return Payoff{
			Months:        months,
			TotalInterest: d.MinimumPayment*float64(months) - d.Balance,
		}
	}
	return Payoff{Months: int(math.Ceil(d.Balance / d.MinimumPayment))}
}

// DebtPayoff pairs a debt with its payoff estimate.
type DebtPayoff struct {
	Debt   Debt   `json:"debt"`
	Payoff Payoff `json:"payoff"`
}

// EstimatePayoffs estimates every debt in collection order.
func EstimatePayoffs(debts []Debt) []DebtPayoff {
	out := make([]DebtPayoff, 0, len(debts))
	for _, d := range debts {
		out = append(out, DebtPayoff{Debt: d, Payoff: EstimatePayoff(d)})
	}
	return out
}
