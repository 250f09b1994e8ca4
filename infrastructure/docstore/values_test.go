package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNumbers(t *testing.T) {
	assert.Equal(t, int64(3), addNumbers(1, 2))
	assert.Equal(t, int64(2), addNumbers(nil, 2))
	assert.Equal(t, 3.5, addNumbers(1, 2.5))
	assert.Equal(t, 1500.0, addNumbers(nil, 1500.0))
	assert.Equal(t, 4.0, addNumbers(float64(3), 1))
	assert.Equal(t, 1.0, addNumbers("texto", 1))
}

func TestFlatten(t *testing.T) {
	sets := map[string]any{}
	incs := map[string]any{}

	flatten("", map[string]any{
		"adId": "AD1",
		"ghlStats": Document{
			"leads":      Increment(1),
			"cashAmount": Increment(1500.0),
		},
		"tags": []string{"a"},
	}, sets, incs)

	assert.Equal(t, map[string]any{"adId": "AD1", "tags": []string{"a"}}, sets)
	assert.Equal(t, map[string]any{"ghlStats.leads": 1, "ghlStats.cashAmount": 1500.0}, incs)
}

func TestDecode(t *testing.T) {
	type bucket struct {
		AdID      string    `json:"adId"`
		Leads     int       `json:"leads"`
		Amount    float64   `json:"cashAmount"`
		UpdatedAt time.Time `json:"updatedAt"`
		Empty     time.Time `json:"emptyAt,omitempty"`
	}

	var out bucket
	err := Decode(Document{
		"adId":       "AD1",
		"leads":      float64(3),
		"cashAmount": int64(1500),
		"updatedAt":  "2025-11-05T10:00:00Z",
		"emptyAt":    "",
		"ignored":    true,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "AD1", out.AdID)
	assert.Equal(t, 3, out.Leads)
	assert.Equal(t, 1500.0, out.Amount)
	assert.Equal(t, time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC), out.UpdatedAt)
	assert.True(t, out.Empty.IsZero())
}
