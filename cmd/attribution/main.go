package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/bootstrap"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
)

var errConflictingModes = errors.New("--dry-run e --execute não podem ser usados juntos")

// globalFlags são comuns a todos os subcomandos
type globalFlags struct {
	dryRun         bool
	execute        bool
	store          string
	serviceAccount string
	since          string
	until          string
}

var (
	cfg   *config.Config
	flags globalFlags
)

var rootCmd = &cobra.Command{
	Use:   "attribution",
	Short: "Atribuição de oportunidades do GHL aos anúncios do Facebook",
	Long: `Sincroniza oportunidades do GoHighLevel, atribui cada uma a um anúncio do
catálogo do Facebook e grava os consolidados semanais no banco de documentos.

Por padrão roda em modo simulação (--dry-run): lê tudo e descarta as escritas.
Use --execute para gravar.

Exemplos:
  # Simula a sincronização completa
  attribution run

  # Grava apenas as oportunidades criadas desde 1º de novembro
  attribution run --since 2025-11-01 --execute

  # Reconstrói os buckets semanais a partir dos mapeamentos gravados
  attribution aggregate --execute`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVar(&flags.dryRun, "dry-run", true, "simula sem gravar no banco de documentos")
	f.BoolVar(&flags.execute, "execute", false, "grava as alterações no banco de documentos")
	f.StringVar(&flags.store, "store", "", "driver do banco de documentos (firestore, mongo, postgres, memory)")
	f.StringVar(&flags.serviceAccount, "service-account", "", "caminho do JSON da service account do Firestore")
	f.StringVar(&flags.since, "since", "", "data inicial (YYYY-MM-DD)")
	f.StringVar(&flags.until, "until", "", "data final inclusiva (YYYY-MM-DD)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("Comando finalizado com erro")
		stop()
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	applyOverrides(loaded, flags)
	bootstrap.ConfigureLogger(loaded)

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func applyOverrides(c *config.Config, f globalFlags) {
	if f.store != "" {
		c.Store.Driver = f.store
	}
	if f.serviceAccount != "" {
		c.Store.ServiceAccountPath = f.serviceAccount
	}
}

// dryRun resolve o modo de escrita; --execute desliga a simulação padrão
func dryRun(cmd *cobra.Command, f globalFlags) (bool, error) {
	if !f.execute {
		return true, nil
	}
	if cmd.Flags().Changed("dry-run") && f.dryRun {
		return false, errConflictingModes
	}
	return false, nil
}

// openApp abre o store (envolto em DryRun na simulação) e monta os serviços
func openApp(cmd *cobra.Command) (*bootstrap.App, error) {
	simulate, err := dryRun(cmd, flags)
	if err != nil {
		return nil, err
	}

	store, err := docstore.Open(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco de documentos: %w", err)
	}
	if simulate {
		logrus.Warn("Modo simulação: nenhuma escrita será gravada (use --execute para gravar)")
		store = docstore.DryRun(store)
	}

	app, err := bootstrap.New(cmd.Context(), cfg, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

// window converte --since/--until (YYYY-MM-DD); --until inclui o dia inteiro
func window(f globalFlags) (since, until *time.Time, err error) {
	since, err = utils.ParseDate(f.since)
	if err != nil {
		return nil, nil, fmt.Errorf("--since inválido: %w", err)
	}
	until, err = utils.ParseDate(f.until)
	if err != nil {
		return nil, nil, fmt.Errorf("--until inválido: %w", err)
	}
	if until != nil {
		end := until.Add(24*time.Hour - time.Nanosecond)
		until = &end
	}
	if since != nil && until != nil && until.Before(*since) {
		return nil, nil, fmt.Errorf("--until anterior a --since")
	}
	return since, until, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
	return err
}
