package finsight

// PortfolioStats are the derived figures over all investments. Holdings are
// never period filtered.
type PortfolioStats struct {
	TotalValue float64 `json:"totalValue"`
	TotalCost  float64 `json:"totalCost"`
	TotalGain  float64 `json:"totalGain"`
	GainPct    float64 `json:"gainPct"` // 0 when TotalCost is 0
}

// NewPortfolioStats values the portfolio at current prices against its cost
// basis.
func NewPortfolioStats(invs []Investment) PortfolioStats {
	var p PortfolioStats
	for _, i := range invs {
		p.TotalValue += i.Value()
		p.TotalCost += i.Cost()
	}
	p.TotalGain = p.TotalValue - p.TotalCost
	if p.TotalCost > 0 {
		p.GainPct = p.TotalGain / p.TotalCost * 100
	}
	return p
}

// DebtStats are the derived figures over all debts.
type DebtStats struct {
	TotalDebt        float64 `json:"totalDebt"`
	TotalMinPayment  float64 `json:"totalMinPayment"`
	AvgRate          float64 `json:"avgRate"` // 0 when there are no debts
	TotalCreditLimit float64 `json:"totalCreditLimit"`
	CreditUsed       float64 `json:"creditUsed"` // percent over limited debts, 0 when none
}

// NewDebtStats sums balances and payments over all debts. Credit utilization
// only considers debts that carry a limit.
func NewDebtStats(debts []Debt) DebtStats {
	var d DebtStats
	var limitedBalance float64
	for _, x := range debts {
		d.TotalDebt += x.Balance
		d.TotalMinPayment += x.MinimumPayment
		d.AvgRate += x.InterestRate
		if x.CreditLimit != nil && *x.CreditLimit > 0 {
			d.TotalCreditLimit += *x.CreditLimit
			limitedBalance += x.Balance
		}
	}
	if len(debts) > 0 {
		d.AvgRate /= float64(len(debts))
	}
	if d.TotalCreditLimit > 0 {
		d.CreditUsed = limitedBalance / d.TotalCreditLimit * 100
	}
	return d
}

// NetWorth is portfolio value minus total debt.
func NetWorth(p PortfolioStats, d DebtStats) float64 {
	return p.TotalValue - d.TotalDebt
}
