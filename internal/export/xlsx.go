package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/order"
)

// SheetName names the single worksheet of the export.
const SheetName = "Commande"

// euroFormat renders a numeric cell as "1 234,56 €" under a French
// locale.
const euroFormat = `#,##0.00" €"`

// WriteXLSX writes the order as a workbook: one sheet, header row,
// currency-formatted numeric cells for the price and total columns,
// and per-column width hints.
func WriteXLSX(w io.Writer, lines []order.Line, cols []string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	headers := Headers(cols)
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &cells); err != nil {
		return err
	}

	priceCol := -1 // 0-based index inside the selection
	for i, c := range cols {
		if c == catalog.FieldPrice {
			priceCol = i
		}
	}

	for i, row := range Rows(lines, cols) {
		cells := make([]any, 0, len(headers))
		cells = append(cells, row.Source)
		for j, v := range row.Values {
			if j == priceCol {
				// numeric cell so the currency format applies
				cells = append(cells, float64(row.PriceCents)/100)
				continue
			}
			cells = append(cells, v)
		}
		cells = append(cells, row.Quantity, float64(row.TotalCents)/100)
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, addr, &cells); err != nil {
			return err
		}
	}

	if err := applyLayout(f, cols, priceCol, len(lines)); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// applyLayout sets the column widths and the currency format on the
// price and total columns.
func applyLayout(f *excelize.File, cols []string, priceCol, rowCount int) error {
	// widths: Source 12, data columns 25, Quantité 10, Total 12
	widths := []float64{12}
	for range cols {
		widths = append(widths, 25)
	}
	widths = append(widths, 10, 12)
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return err
		}
	}
	if rowCount == 0 {
		return nil
	}

	numFmt := euroFormat
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	currencyCols := []int{len(cols) + 3} // Total, 1-based
	if priceCol >= 0 {
		currencyCols = append(currencyCols, priceCol+2) // after Source
	}
	for _, col := range currencyCols {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, rowCount+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, top, bottom, style); err != nil {
			return fmt.Errorf("style colonne %d: %w", col, err)
		}
	}
	return nil
}
