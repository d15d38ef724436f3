package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Liste les colonnes disponibles et leur état",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		selected := make(map[string]bool)
		for _, c := range eng.Columns() {
			selected[c] = true
		}
		for _, h := range eng.Headers() {
			mark := " "
			if selected[h] {
				mark = "x"
			}
			fmt.Printf("[%s] %s\n", mark, h)
		}
		return nil
	},
}

var columnsToggleCmd = &cobra.Command{
	Use:   "toggle <colonne>",
	Short: "Active ou désactive une colonne d'affichage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}
		on, err := eng.ToggleColumn(args[0])
		if err != nil {
			return err
		}
		if on {
			fmt.Printf("colonne affichée : %s\n", args[0])
		} else {
			fmt.Printf("colonne masquée : %s\n", args[0])
		}
		return nil
	},
}

func init() {
	columnsCmd.AddCommand(columnsToggleCmd)
	rootCmd.AddCommand(columnsCmd)
}
