package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	fileTimestampLayout = "20060102_150405"
	maxSheetNameLength  = 31
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reporter grava os relatórios de execução em disco
type Reporter struct {
	dir string
	now func() time.Time
}

func NewReporter(dir string) *Reporter {
	if dir == "" {
		dir = "."
	}
	return &Reporter{
		dir: dir,
		now: time.Now,
	}
}

// WriteJSON grava v em {dir}/{name}_{YYYYMMDD_HHMMSS}.json e devolve o caminho
func (r *Reporter) WriteJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar relatório %s: %w", name, err)
	}

	path, err := r.path(name, "json")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar relatório %s: %w", path, err)
	}

	logrus.WithField("path", path).Info("Relatório gravado")
	return path, nil
}

// ExportXLSX grava uma linha por entidade, com colunas achatadas em notação de ponto
func (r *Reporter) ExportXLSX(name string, rows []map[string]any) (string, error) {
	path, err := r.path(name, "xlsx")
	if err != nil {
		return "", err
	}

	flat := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, Flatten(row))
	}
	header := Columns(flat)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar planilha")
		}
	}()

	sheet := sheetName(name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("erro ao nomear a planilha: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, row := range flat {
		values := make([]any, len(header))
		for j, col := range header {
			values[j] = cellValue(row[col])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return "", fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("erro ao gravar planilha %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(flat),
	}).Info("Planilha exportada")

	return path, nil
}

func (r *Reporter) path(name, ext string) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}
	file := fmt.Sprintf("%s_%s.%s", name, r.now().Format(fileTimestampLayout), ext)
	return filepath.Join(r.dir, file), nil
}

// Flatten achata mapas aninhados em chaves com ponto: {"a": {"b": 1}} vira {"a.b": 1}
func Flatten(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out map[string]any, prefix string, doc map[string]any) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}

// Columns devolve a união das chaves das linhas, com id primeiro e as demais em ordem alfabética
func Columns(rows []map[string]any) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			set[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(set))
	for k := range set {
		cols = append(cols, k)
	}

	sort.Slice(cols, func(i, j int) bool {
		if cols[i] == "id" || cols[j] == "id" {
			return cols[i] == "id"
		}
		return cols[i] < cols[j]
	})
	return cols
}

func cellValue(v any) any {
	switch value := v.(type) {
	case nil:
		return ""
	case string, bool, int, int32, int64, float32, float64:
		return value
	case time.Time:
		return value.UTC().Format(time.RFC3339)
	case []string:
		return strings.Join(value, ", ")
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	}
}

func sheetName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_", "?", "", "*", "", "[", "", "]", "", ":", "").Replace(name)
	if name == "" {
		return "Sheet1"
	}
	if len(name) > maxSheetNameLength {
		return name[:maxSheetNameLength]
	}
	return name
}
