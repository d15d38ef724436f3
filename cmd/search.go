package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/money"
	"github.com/diewo77/go-mercuriale/internal/search"
)

// terminal highlight markers (reverse video)
const (
	hlOn  = "\x1b[7m"
	hlOff = "\x1b[0m"
)

var (
	searchField   string
	searchSources string
	searchPlain   bool
	searchAdd     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <requête>",
	Short: "Recherche dans les mercuriales activées",
	Long: `Recherche une sous-chaîne dans les données courantes, sur un champ
précis (--field) ou sur tous. Sur le champ "Code Produit", une requête
composée d'au moins deux codes de 2 à 6 chiffres ("100 200 4510")
bascule en mode multi-codes : correspondance exacte de chaque code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		sources, err := parseSources(searchSources)
		if err != nil {
			return err
		}
		eng.SetEnabledSources(sources)

		results := eng.Search(query, searchField)
		printCounts(eng.Catalog(), sources)
		if len(results) == 0 {
			fmt.Printf("%s pour %q\n", tr("no_results"), strings.TrimSpace(query))
			return nil
		}

		left, right := hlOn, hlOff
		if searchPlain {
			left, right = "[", "]"
		}
		var tokens []string
		if searchField == catalog.FieldCode {
			tokens = search.MultiCodeTokens(query)
		}
		mark := func(text string) string {
			if tokens != nil {
				return search.HighlightTokens(text, tokens, left, right)
			}
			return search.Highlight(text, query, left, right)
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		cols := displayColumns(eng.Columns())
		headers := append([]string{"Source", catalog.FieldCode}, cols...)
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		for _, p := range results {
			row := []string{string(p.Source), mark(p.Code())}
			for _, c := range cols {
				row = append(row, mark(p.Field(c)))
			}
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if searchAdd {
			added, skipped := eng.AddMany(results)
			fmt.Printf("%s : %d, ignorés : %d\n", tr("item_added"), added, skipped)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <code>",
	Short: "Compare les prix d'un article entre les sources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		var label string
		for _, p := range eng.Catalog().All() {
			if p.Code() == strings.TrimSpace(args[0]) {
				label = p.Label()
				break
			}
		}
		products := eng.Comparisons(args[0], label)
		if products == nil {
			fmt.Println(tr("no_comparison"))
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Source\tLibellé\tPrix")
		for _, p := range products {
			cents := money.ParseCentsValue(p.Fields[catalog.FieldPrice])
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Source, p.Label(), money.FormatCents(cents))
		}
		return w.Flush()
	},
}

// displayColumns drops the code column from the selection: the search
// table always prints it right after the source.
func displayColumns(cols []string) []string {
	out := cols[:0:0]
	for _, c := range cols {
		if c != catalog.FieldCode {
			out = append(out, c)
		}
	}
	return out
}

// printCounts prints the per-source and current-view product counts.
func printCounts(cat *catalog.Store, sources []catalog.Source) {
	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		parts = append(parts, fmt.Sprintf("%s %d", src, cat.Count(src)))
	}
	fmt.Printf("%d %s (%s)\n", cat.CurrentCount(), tr("products"), strings.Join(parts, ", "))
}

func init() {
	searchCmd.Flags().StringVarP(&searchField, "field", "f", search.FieldAll,
		`champ interrogé ("all" pour tous)`)
	searchCmd.Flags().StringVarP(&searchSources, "sources", "s", "",
		"sources activées, séparées par des virgules (défaut : toutes)")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false,
		"marqueurs [texte] au lieu des séquences ANSI")
	searchCmd.Flags().BoolVar(&searchAdd, "add", false,
		"ajoute tous les résultats à la commande")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(compareCmd)
}
