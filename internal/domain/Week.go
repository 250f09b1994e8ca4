package domain

import (
	"fmt"
	"strings"
	"time"
)

const weekDateLayout = "2006-01-02"

// WeekID identifica a semana segunda..domingo: YYYY-MM-DD_YYYY-MM-DD
type WeekID string

// WeekOf calcula a semana que contém t no fuso informado
func WeekOf(t time.Time, loc *time.Location) WeekID {
	if loc == nil {
		loc = time.UTC
	}

	local := t.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return WeekID(monday.Format(weekDateLayout) + "_" + sunday.Format(weekDateLayout))
}

// ParseWeekID valida o formato e a consistência segunda/domingo
func ParseWeekID(s string) (WeekID, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 2 {
		return "", fmt.Errorf("week id inválido: %q", s)
	}

	start, err := time.Parse(weekDateLayout, parts[0])
	if err != nil {
		return "", fmt.Errorf("week id inválido: %q: %w", s, err)
	}
	end, err := time.Parse(weekDateLayout, parts[1])
	if err != nil {
		return "", fmt.Errorf("week id inválido: %q: %w", s, err)
	}

	if start.Weekday() != time.Monday || !end.Equal(start.AddDate(0, 0, 6)) {
		return "", fmt.Errorf("week id não corresponde a segunda..domingo: %q", s)
	}

	return WeekID(s), nil
}

func (w WeekID) String() string {
	return string(w)
}

// Start retorna a segunda-feira da semana (UTC, meia-noite)
func (w WeekID) Start() time.Time {
	t, _ := time.Parse(weekDateLayout, strings.SplitN(string(w), "_", 2)[0])
	return t
}

// End retorna o domingo da semana (UTC, meia-noite)
func (w WeekID) End() time.Time {
	parts := strings.SplitN(string(w), "_", 2)
	if len(parts) < 2 {
		return time.Time{}
	}
	t, _ := time.Parse(weekDateLayout, parts[1])
	return t
}

// Month é a partição mensal da semana (mês da segunda-feira), formato YYYY-MM
func (w WeekID) Month() string {
	return w.Start().Format("2006-01")
}

// WeeklyBucket é o consolidado de um anúncio em uma semana
type WeeklyBucket struct {
	AdID               string  `json:"adId"`
	WeekID             WeekID  `json:"weekId"`
	Leads              int     `json:"leads"`
	BookedAppointments int     `json:"bookedAppointments"`
	Deposits           int     `json:"deposits"`
	CashCollected      int     `json:"cashCollected"`
	CashAmount         float64 `json:"cashAmount"`
}
