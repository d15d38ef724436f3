package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/money"
	"github.com/diewo77/go-mercuriale/internal/order"
)

var addCmd = &cobra.Command{
	Use:   "add <code> <source>",
	Short: "Ajoute un article à la commande (quantité 1)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		src, err := requireSource(args[1])
		if err != nil {
			return err
		}
		switch err := eng.Add(args[0], src); {
		case errors.Is(err, order.ErrAlreadyInOrder):
			// recoverable: warn, state unchanged
			fmt.Println(tr("already_in_order"))
			return nil
		case errors.Is(err, order.ErrNotFound):
			fmt.Println(tr("not_found"))
			return nil
		case err != nil:
			return err
		}
		fmt.Println(tr("item_added"))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <code> <source>",
	Short: "Retire un article de la commande",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		src, err := requireSource(args[1])
		if err != nil {
			return err
		}
		if eng.Remove(args[0], src) {
			fmt.Println(tr("item_removed"))
		} else {
			fmt.Println(tr("item_absent"))
		}
		return nil
	},
}

var qtyCmd = &cobra.Command{
	Use:   "qty <code> <source> <quantité>",
	Short: "Change la quantité d'une ligne (0 la supprime)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		src, err := requireSource(args[1])
		if err != nil {
			return err
		}
		if !eng.InOrder(args[0], src) {
			fmt.Println(tr("item_absent"))
			return nil
		}
		eng.SetQuantity(args[0], src, args[2])
		if eng.InOrder(args[0], src) {
			fmt.Println(tr("quantity_updated"))
		} else {
			fmt.Println(tr("item_removed"))
		}
		return nil
	},
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Affiche la commande en cours et son total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		lines := eng.OrderLines()
		if len(lines) == 0 {
			fmt.Println(tr("order_empty"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		cols := displayColumns(eng.Columns())
		headers := append([]string{"Source", catalog.FieldCode}, cols...)
		headers = append(headers, tr("quantity"), "Total")
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		for _, l := range lines {
			row := []string{string(l.Product.Source), l.Product.Code()}
			for _, c := range cols {
				row = append(row, l.Product.Field(c))
			}
			row = append(row, fmt.Sprintf("%d", l.Quantity), money.FormatCents(l.TotalCents()))
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("%s : %s\n", tr("order_total"), money.FormatCents(eng.TotalCents()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(qtyCmd)
	rootCmd.AddCommand(orderCmd)
}
