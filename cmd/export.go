package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-mercuriale/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporte la commande (csv, xlsx ou pdf)",
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

		dir := exportOut
		if dir == "" {
			dir = cfg.ExportDir
		}
		path := filepath.Join(dir, export.Filename(exportFormat))
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		cols := eng.Columns()
		switch exportFormat {
		case "csv":
			err = export.WriteCSV(f, lines, cols)
		case "xlsx":
			err = export.WriteXLSX(f, lines, cols)
		case "pdf":
			err = export.WritePDF(f, lines, cols, eng.TotalCents())
		default:
			return fmt.Errorf("format inconnu: %q (csv, xlsx, pdf)", exportFormat)
		}
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", tr("export_written"), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "F", "csv", "format d'export (csv, xlsx, pdf)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "répertoire de sortie (défaut : MERCURIALE_EXPORT_DIR)")
	rootCmd.AddCommand(exportCmd)
}
