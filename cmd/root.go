package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/config"
	"github.com/diewo77/go-mercuriale/internal/engine"
	"github.com/diewo77/go-mercuriale/internal/i18n"
	"github.com/diewo77/go-mercuriale/internal/state"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "mercuriale",
	Short: "Commandes fournisseurs sur les mercuriales des quatre hôtels",
	Long: `mercuriale parcourt les mercuriales Folkestone, Vendôme, Washington et
Le Havre, construit une commande (articles + quantités) et l'exporte en
CSV, XLSX ou PDF. La commande et les colonnes affichées sont conservées
entre deux lancements.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	log.SetFlags(0)
	_ = godotenv.Load()
	cfg = config.Load()
}

// tr shortcut over the configured language.
func tr(code string) string { return i18n.T(cfg.Lang, code) }

// newEngine loads the catalogs and restores the persisted session.
// One command invocation is one event: load, mutate or query, exit.
func newEngine(ctx context.Context) (*engine.Engine, error) {
	cat, err := catalog.LoadDir(ctx, cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, tr("load_error"))
		return nil, err
	}
	st, err := state.Open(cfg.StateDSN)
	if err != nil {
		return nil, err
	}
	return engine.New(cat, st)
}

// parseSources turns "folkestone,vendome" into sources; empty input
// means every source.
func parseSources(raw string) ([]catalog.Source, error) {
	if strings.TrimSpace(raw) == "" {
		return catalog.SourceOrder, nil
	}
	var out []catalog.Source
	for _, part := range strings.Split(raw, ",") {
		src, ok := catalog.ParseSource(part)
		if !ok {
			return nil, fmt.Errorf("source inconnue: %q", strings.TrimSpace(part))
		}
		out = append(out, src)
	}
	return out, nil
}

// requireSource parses a positional source argument.
func requireSource(arg string) (catalog.Source, error) {
	src, ok := catalog.ParseSource(arg)
	if !ok {
		return "", fmt.Errorf("source inconnue: %q (folkestone, vendome, washington, lehavre)", arg)
	}
	return src, nil
}
