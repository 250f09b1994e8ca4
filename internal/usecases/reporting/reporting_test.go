package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2025, 11, 10, 14, 30, 5, 0, time.UTC)

func newTestReporter(t *testing.T) *Reporter {
	r := NewReporter(t.TempDir())
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestWriteJSON(t *testing.T) {
	r := newTestReporter(t)

	path, err := r.WriteJSON("attribution_run", map[string]any{"matched": 3})
	require.NoError(t, err)
	assert.Equal(t, "attribution_run_20251110_143005.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"matched": 3}`, string(data))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want map[string]any
	}{
		{
			name: "mapas aninhados viram chaves com ponto",
			doc: map[string]any{
				"adId":     "AD1",
				"ghlStats": map[string]any{"leads": 2, "extra": map[string]any{"x": true}},
			},
			want: map[string]any{"adId": "AD1", "ghlStats.leads": 2, "ghlStats.extra.x": true},
		},
		{
			name: "mapa vazio é mantido como valor",
			doc:  map[string]any{"attribution": map[string]any{}},
			want: map[string]any{"attribution": map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.doc))
		})
	}
}

func TestColumns(t *testing.T) {
	rows := []map[string]any{
		{"b": 1, "id": "x"},
		{"a": 2},
	}
	assert.Equal(t, []string{"id", "a", "b"}, Columns(rows))
}

func TestExportXLSX(t *testing.T) {
	r := newTestReporter(t)

	rows := []map[string]any{
		{"id": "o1", "adId": "AD1", "candidateAdIds": []string{"AD1", "AD2"}, "attribution": map[string]any{"adId": "AD1"}},
		{"id": "o2", "adId": ""},
	}

	path, err := r.ExportXLSX("ghlOpportunityMapping", rows)
	require.NoError(t, err)
	assert.Equal(t, "ghlOpportunityMapping_20251110_143005.xlsx", filepath.Base(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("ghlOpportunityMapping")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"id", "adId", "attribution.adId", "candidateAdIds"}, got[0])
	assert.Equal(t, []string{"o1", "AD1", "AD1", "AD1, AD2"}, got[1])
	assert.Equal(t, "o2", got[2][0])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "advertData_2025-11", sheetName("advertData/2025-11"))
	assert.Len(t, sheetName("opportunityStageHistoryWithAVeryLongName"), 31)
}
