package domain

import "strings"

// StageCategory é a classificação de negócio de uma etapa do pipeline
type StageCategory string

const (
	StageBookedAppointment StageCategory = "bookedAppointments"
	StageDeposit           StageCategory = "deposits"
	StageCashCollected     StageCategory = "cashCollected"
	StageOther             StageCategory = "other"
)

// ClassifyStage classifica pelo nome da etapa, sem diferenciar maiúsculas
func ClassifyStage(stageName string) StageCategory {
	name := strings.ToLower(stageName)

	switch {
	case strings.Contains(name, "booked"), strings.Contains(name, "appointment"):
		return StageBookedAppointment
	case strings.Contains(name, "deposit"):
		return StageDeposit
	case strings.Contains(name, "cash") && strings.Contains(name, "collected"):
		return StageCashCollected
	default:
		return StageOther
	}
}

// CarriesValue indica etapas que somam valor monetário em cashAmount
func (c StageCategory) CarriesValue() bool {
	return c == StageDeposit || c == StageCashCollected
}
