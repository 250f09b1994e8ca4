package main

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/syncing"
)

type runFlags struct {
	pipeline         string
	status           string
	formBackfill     bool
	details          bool
	skipStageHistory bool
	noReport         bool
}

var runOpts runFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa o pipeline completo: busca, atribuição, consolidação e histórico de etapas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := runOptions(runOpts)
		if err != nil {
			return err
		}
		return runPipeline(cmd, opts, false)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Atribui as oportunidades e grava apenas os mapeamentos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := runOptions(runOpts)
		if err != nil {
			return err
		}
		opts.SkipAggregate = true
		opts.SkipStageHistory = true
		return runPipeline(cmd, opts, false)
	},
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Reconstrói os buckets semanais a partir dos mapeamentos gravados",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := runOptions(runOpts)
		if err != nil {
			return err
		}
		return runPipeline(cmd, opts, true)
	},
}

var stageHistoryCmd = &cobra.Command{
	Use:   "stage-history",
	Short: "Registra a etapa atual de cada oportunidade",
	RunE:  runStageHistory,
}

func init() {
	for _, c := range []*cobra.Command{runCmd, matchCmd, aggregateCmd, stageHistoryCmd} {
		f := c.Flags()
		f.StringVar(&runOpts.pipeline, "pipeline", "", "filtra por pipeline do GHL (com replace, só no match)")
		f.StringVar(&runOpts.status, "status", "", "filtra por status da oportunidade (open, won, lost, abandoned; com replace, só no match)")
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{runCmd, matchCmd} {
		c.Flags().BoolVar(&runOpts.details, "details", false, "busca o detalhe das oportunidades sem atribuição na busca")
	}
	runCmd.Flags().BoolVar(&runOpts.formBackfill, "form-backfill", false, "usa envios de formulário para oportunidades sem atribuição")
	runCmd.Flags().BoolVar(&runOpts.skipStageHistory, "skip-stage-history", false, "não grava o histórico de etapas")
	for _, c := range []*cobra.Command{runCmd, matchCmd, aggregateCmd} {
		c.Flags().BoolVar(&runOpts.noReport, "no-report", false, "não grava o relatório JSON da execução")
	}
}

func runOptions(f runFlags) (syncing.RunOptions, error) {
	since, until, err := window(flags)
	if err != nil {
		return syncing.RunOptions{}, err
	}

	return syncing.RunOptions{
		PipelineID:       f.pipeline,
		Status:           f.status,
		Since:            since,
		Until:            until,
		FetchDetails:     f.details,
		FormBackfill:     f.formBackfill,
		SkipStageHistory: f.skipStageHistory,
		WriteReport:      !f.noReport,
	}, nil
}

func runPipeline(cmd *cobra.Command, opts syncing.RunOptions, aggregateOnly bool) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	var report *syncing.RunReport
	if aggregateOnly {
		report, err = app.Sync.Aggregate(cmd.Context(), opts)
	} else {
		report, err = app.Sync.Run(cmd.Context(), opts)
	}

	if report != nil {
		printRunSummary(cmd, report)
	}
	return err
}

func printRunSummary(cmd *cobra.Command, report *syncing.RunReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Execução %s\n", report.RunID)
	fmt.Fprintf(out, "  Oportunidades: %d\n", report.Opportunities)
	if report.DetailFilled > 0 {
		fmt.Fprintf(out, "  Via detalhe:   %d\n", report.DetailFilled)
	}
	if report.Assign != nil {
		fmt.Fprintf(out, "  Atribuídas:    %d (sem anúncio: %d, ambíguas: %d)\n",
			report.Assign.Matched, report.Assign.Unmatched, report.Assign.Ambiguous)
		methods := make([]string, 0, len(report.Assign.ByMethod))
		for method := range report.Assign.ByMethod {
			methods = append(methods, string(method))
		}
		sort.Strings(methods)
		for _, method := range methods {
			fmt.Fprintf(out, "    %-24s %d\n", method, report.Assign.ByMethod[domain.MatchMethod(method)])
		}
	}
	if report.Aggregate != nil {
		fmt.Fprintf(out, "  Buckets:       %d em %d anúncios (política %s, %d removidos)\n",
			report.Aggregate.Buckets, report.Aggregate.Ads, report.Aggregate.Policy, report.Aggregate.PrunedBuckets)
	}
	if report.StageHistory != nil {
		fmt.Fprintf(out, "  Etapas:        %d novas, %d atualizadas\n",
			report.StageHistory.Created, report.StageHistory.Refreshed)
	}
	if report.ReportPath != "" {
		fmt.Fprintf(out, "  Relatório:     %s\n", report.ReportPath)
	}
}

func runStageHistory(cmd *cobra.Command, _ []string) error {
	since, until, err := window(flags)
	if err != nil {
		return err
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	opportunities, err := app.GHL.FetchOpportunities(ctx, domain.OpportunityFilter{
		PipelineID: runOpts.pipeline,
		Status:     runOpts.status,
		Since:      since,
		Until:      until,
	})
	if err != nil {
		return fmt.Errorf("erro ao buscar oportunidades: %w", err)
	}

	mappings, err := app.Attributor.LoadMappings(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar mapeamentos: %w", err)
	}

	report, err := app.Tracker.Record(ctx, opportunities, mappings)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"observed":  report.Observed,
		"created":   report.Created,
		"refreshed": report.Refreshed,
	}).Info("Histórico de etapas registrado")

	if err := printJSON(cmd, report); err != nil {
		return err
	}
	if report.Write.Errors > 0 {
		return fmt.Errorf("%d escritas falharam no histórico de etapas", report.Write.Errors)
	}
	return nil
}
