package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStage(t *testing.T) {
	tests := map[string]StageCategory{
		"Appointment Booked": StageBookedAppointment,
		"BOOKED CALL":        StageBookedAppointment,
		"Deposit Received":   StageDeposit,
		"deposit":            StageDeposit,
		"Cash Collected":     StageCashCollected,
		"cash-collected ✅":   StageCashCollected,
		"Cash Pending":       StageOther,
		"New Lead":           StageOther,
		"":                   StageOther,
	}

	for stage, want := range tests {
		assert.Equal(t, want, ClassifyStage(stage), stage)
	}
}

func TestStageCarriesValue(t *testing.T) {
	assert.True(t, StageDeposit.CarriesValue())
	assert.True(t, StageCashCollected.CarriesValue())
	assert.False(t, StageBookedAppointment.CarriesValue())
	assert.False(t, StageOther.CarriesValue())
}
