package finsight

import (
	"testing"
	"time"

	"github.com/finsight/finsight/date"
)

func TestForecast(t *testing.T) {
	monthly := map[string]MonthFlow{
		"2026-01": {Income: 6000, Expense: 4000},
		"2026-02": {Income: 6000, Expense: 2000},
	}
	now := date.NewMonth(2026, time.February)

	months := Forecast(monthly, now, 2, 3)
	if len(months) != 6 {
		t.Fatalf("Forecast returned %d months, want 6", len(months))
	}

	// Past months carry recorded totals, even when empty.
	if months[0].Month.String() != "2025-12" || months[0].Income != 0 || months[0].Projected {
		t.Errorf("months[0] = %+v, want empty recorded 2025-12", months[0])
	}
	if months[1].Income != 6000 || months[1].Expense != 4000 || months[1].Projected {
		t.Errorf("months[1] = %+v, want recorded 2026-01 totals", months[1])
	}

	cur := months[2]
	if !cur.Current || cur.Projected || cur.Income != 6000 || cur.Expense != 2000 {
		t.Errorf("current month = %+v, want recorded 2026-02 totals", cur)
	}

	// Future months all carry the rolling average of the two active months.
	for _, m := range months[3:] {
		if !m.Projected || m.Current {
			t.Errorf("month %s flags = %+v, want projected", m.Month, m)
		}
		if m.Income != 6000 || m.Expense != 3000 || m.Net != 3000 {
			t.Errorf("month %s = %+v, want average 6000/3000", m.Month, m)
		}
	}
}
