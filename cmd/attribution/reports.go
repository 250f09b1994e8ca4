package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/reporting"
)

type exportFlags struct {
	collection string
	format     string
	xlsx       bool
}

var exportOpts exportFlags

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Lista oportunidades com anúncios candidatos em mais de uma campanha",
	RunE:  runDuplicates,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta uma coleção do banco de documentos para JSON ou XLSX",
	Long: `Lê todos os documentos de uma coleção e grava em REPORT_DIR.

Exemplos:
  attribution export --collection adPerformance --format xlsx
  attribution export --collection advertData/2025-11/ads --format json`,
	RunE: runExport,
}

func init() {
	duplicatesCmd.Flags().BoolVar(&exportOpts.xlsx, "xlsx", false, "também exporta a lista em XLSX")
	exportCmd.Flags().StringVar(&exportOpts.collection, "collection", "adPerformance", "coleção a exportar")
	exportCmd.Flags().StringVar(&exportOpts.format, "format", "xlsx", "formato de saída (json ou xlsx)")

	rootCmd.AddCommand(duplicatesCmd, exportCmd)
}

func runDuplicates(cmd *cobra.Command, _ []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	report, err := app.Attributor.FindDuplicates(cmd.Context())
	if err != nil {
		return err
	}

	path, err := app.Reporter.WriteJSON("cross_campaign_duplicates", report)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d oportunidades duplicadas entre campanhas: %s\n", report.Total, path)

	if !exportOpts.xlsx || len(report.Duplicates) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(report.Duplicates))
	for _, d := range report.Duplicates {
		rows = append(rows, map[string]any{
			"id":           d.OpportunityID,
			"assignedAdId": d.AssignedAdID,
			"method":       string(d.Method),
			"candidateAds": d.CandidateAds,
			"campaigns":    d.Campaigns,
		})
	}
	path, err = app.Reporter.ExportXLSX("cross_campaign_duplicates", rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Planilha: %s\n", path)
	return nil
}

// exportRows achata os documentos; o id do documento vira a coluna "id"
func exportRows(snaps []docstore.Snapshot) []map[string]any {
	rows := make([]map[string]any, 0, len(snaps))
	for _, snap := range snaps {
		row := reporting.Flatten(snap.Data)
		row["id"] = snap.ID
		rows = append(rows, row)
	}
	return rows
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportOpts.format != "json" && exportOpts.format != "xlsx" {
		return fmt.Errorf("--format inválido: %q", exportOpts.format)
	}
	if err := docstore.ValidateCollectionPath(exportOpts.collection); err != nil {
		return err
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	snaps, err := app.Store.List(cmd.Context(), exportOpts.collection)
	if err != nil {
		return fmt.Errorf("erro ao listar %s: %w", exportOpts.collection, err)
	}

	name := strings.ReplaceAll(exportOpts.collection, "/", "_")
	var path string
	if exportOpts.format == "json" {
		docs := make(map[string]docstore.Document, len(snaps))
		for _, snap := range snaps {
			docs[snap.ID] = snap.Data
		}
		path, err = app.Reporter.WriteJSON(name, docs)
	} else {
		path, err = app.Reporter.ExportXLSX(name, exportRows(snaps))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d documentos exportados: %s\n", len(snaps), path)
	return nil
}
