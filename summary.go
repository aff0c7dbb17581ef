package finsight

// Summary is the full metrics snapshot the presentation layer and the
// advisory context builder consume: period stats, breakdown, portfolio and
// debt figures, net worth and projection, derived in one pass.
type Summary struct {
	View      View            `json:"view"`
	Ref       string          `json:"ref"` // the ISO period key that was filtered on
	Stats     Stats           `json:"stats"`
	Breakdown []CategoryTotal `json:"breakdown"`
	Portfolio PortfolioStats  `json:"portfolio"`
	Debts     DebtStats       `json:"debts"`
	NetWorth  float64         `json:"netWorth"`
	Projected Projection      `json:"projection"`
	Trend     []float64       `json:"trend,omitempty"` // monthly view only
}

// NewSummary recomputes every derived statistic from the book. It is pure:
// calling it twice on an unchanged book yields identical results.
func NewSummary(b *Book, view View, ref string) Summary {
	filtered := FilterPeriod(b.Transactions, view, ref)
	s := Summary{
		View:      view,
		Ref:       ref,
		Stats:     NewStats(filtered),
		Breakdown: Breakdown(filtered),
		Portfolio: NewPortfolioStats(b.Investments),
		Debts:     NewDebtStats(b.Debts),
		Projected: NewProjection(MonthlyTotals(b.Transactions)),
	}
	s.NetWorth = NetWorth(s.Portfolio, s.Debts)
	if view == Monthly {
		s.Trend = CumulativeTrend(filtered)
	}
	return s
}
