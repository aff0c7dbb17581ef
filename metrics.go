package finsight

import (
	"sort"
	"strings"
)

// FilterPeriod selects the transactions whose date falls in the period
// identified by view and ref. Ref is an ISO period key: a full "YYYY-MM-DD"
// day for Daily, of which the first 7 characters are used for Monthly and
// the first 4 for Yearly. Comparison is a plain string prefix match, which
// is chronologically correct because ISO dates are zero padded.
func FilterPeriod(txs []Transaction, view View, ref string) []Transaction {
	n := view.prefixLen()
	if len(ref) > n {
		ref = ref[:n]
	}
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.HasPrefix(t.Date.String(), ref) {
			out = append(out, t)
		}
	}
	return out
}

// Stats are the headline figures for a filtered transaction set.
type Stats struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
	Count   int     `json:"count"`
}

// NewStats sums a transaction set. Amounts are stored unsigned, the sign is
// applied here from the transaction type.
func NewStats(txs []Transaction) Stats {
	var s Stats
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.Income += t.Amount
		case Expense:
			s.Expense += t.Amount
		}
	}
	s.Net = s.Income - s.Expense
	s.Count = len(txs)
	return s
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Type  TxType  `json:"type"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
	Color string  `json:"color"`
}

// Breakdown groups transactions by category, summing amounts and counting
// occurrences. A category keeps the type of its first-seen transaction; a
// name reused across both types is folded into one row (a known quirk, kept
// deliberately). Rows are sorted by total descending and colored by cycling
// the palette in that order, so colors are positional, not stable per name.
func Breakdown(txs []Transaction) []CategoryTotal {
	index := make(map[string]int)
	var rows []CategoryTotal
	for _, t := range txs {
		i, ok := index[t.Category]
		if !ok {
			i = len(rows)
			index[t.Category] = i
			rows = append(rows, CategoryTotal{Name: t.Category, Type: t.Type})
		}
		rows[i].Total += t.Amount
		rows[i].Count++
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	for i := range rows {
		rows[i].Color = Palette[i%len(Palette)]
	}
	return rows
}

// MonthFlow is the income/expense sum of one calendar month.
type MonthFlow struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyTotals buckets all transactions by their "YYYY-MM" key. It is the
// basis for trend and projection views and is never period filtered.
func MonthlyTotals(txs []Transaction) map[string]MonthFlow {
	m := make(map[string]MonthFlow)
	for _, t := range txs {
		key := t.Date.MonthOf().String()
		f := m[key]
		switch t.Type {
		case Income:
			f.Income += t.Amount
		case Expense:
			f.Expense += t.Amount
		}
		m[key] = f
	}
	return m
}

// trendDays is the fixed length of the cumulative daily trend. Months with
// fewer days still produce 31 points; the tail repeats the final value.
const trendDays = 31

// CumulativeTrend builds the running daily net total for an already
// month-filtered transaction set: slot i holds the signed net of days 1..i+1.
// It is a prefix sum over day-of-month, not a calendar-aware series.
func CumulativeTrend(txs []Transaction) []float64 {
	days := make(map[int]float64)
	for _, t := range txs {
		d := t.Date.Day()
		if t.Type == Income {
			days[d] += t.Amount
		} else {
			days[d] -= t.Amount
		}
	}
	out := make([]float64, trendDays)
	var cum float64
	for i := 1; i <= trendDays; i++ {
		cum += days[i]
		out[i-1] = cum
	}
	return out
}

// Projection is the rolling-average forecast derived from monthly totals.
type Projection struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	AnnualIncome   float64 `json:"annualIncome"`
	AnnualExpense  float64 `json:"annualExpense"`
	AnnualNet      float64 `json:"annualNet"`
	SavingsRate    float64 `json:"savingsRate"` // percent, 0 when no income
}

// rollingAverages returns the mean income and expense over the
// chronologically last n months present in the monthly map.
func rollingAverages(monthly map[string]MonthFlow, n int) (avgIncome, avgExpense float64) {
	keys := make([]string, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	if len(keys) == 0 {
		return 0, 0
	}
	for _, k := range keys {
		avgIncome += monthly[k].Income
		avgExpense += monthly[k].Expense
	}
	avgIncome /= float64(len(keys))
	avgExpense /= float64(len(keys))
	return avgIncome, avgExpense
}

// NewProjection forecasts annual figures from the 3-month rolling average.
// With a single active month the averages equal that month's values.
func NewProjection(monthly map[string]MonthFlow) Projection {
	avgIncome, avgExpense := rollingAverages(monthly, 3)
	p := Projection{
		MonthlyIncome:  avgIncome,
		MonthlyExpense: avgExpense,
		AnnualIncome:   avgIncome * 12,
		AnnualExpense:  avgExpense * 12,
		AnnualNet:      (avgIncome - avgExpense) * 12,
	}
	if avgIncome > 0 {
		p.SavingsRate = (avgIncome - avgExpense) / avgIncome * 100
	}
	return p
}
