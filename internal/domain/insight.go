package domain

import "time"

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// TimeRange devolve o intervalo no formato aceito pela Graph API
func (f *InsightFilters) TimeRange() (string, string, bool) {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return "", "", false
	}
	return f.StartDate.Format("2006-01-02"), f.EndDate.Format("2006-01-02"), true
}
