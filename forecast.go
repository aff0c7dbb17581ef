package finsight

import "github.com/finsight/finsight/date"

// ForecastMonth is one slot of the month-by-month forecast series.
type ForecastMonth struct {
	Month     date.Month `json:"month"`
	Income    float64    `json:"income"`
	Expense   float64    `json:"expense"`
	Net       float64    `json:"net"`
	Projected bool       `json:"projected"`
	Current   bool       `json:"current"`
}

// Forecast builds the month series around now: `back` past months, the
// current month, and `forward` future months. Past and current slots carry
// the recorded totals; future slots are assigned the 3-month rolling
// averages verbatim and flagged as projected.
func Forecast(monthly map[string]MonthFlow, now date.Month, back, forward int) []ForecastMonth {
	avgIncome, avgExpense := rollingAverages(monthly, 3)

	out := make([]ForecastMonth, 0, back+forward+1)
	for i := -back; i <= forward; i++ {
		m := now.Add(i)
		fm := ForecastMonth{Month: m, Current: i == 0, Projected: i > 0}
		if fm.Projected {
			fm.Income, fm.Expense = avgIncome, avgExpense
		} else {
			f := monthly[m.String()]
			fm.Income, fm.Expense = f.Income, f.Expense
		}
		fm.Net = fm.Income - fm.Expense
		out = append(out, fm)
	}
	return out
}
