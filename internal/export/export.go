// Package export met la commande en forme tabulaire et l'écrit en
// CSV, XLSX ou PDF.
package export

import (
	"time"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/money"
	"github.com/diewo77/go-mercuriale/internal/order"
)

// Row is one flat export line: source, the selected column values in
// selection order, quantity and the line total in cents. Unselected or
// missing fields render as the empty string, never a literal null.
type Row struct {
	Source     string
	Values     []string
	Quantity   int
	PriceCents int64
	TotalCents int64
}

// Headers returns the export header row for a column selection.
func Headers(cols []string) []string {
	out := make([]string, 0, len(cols)+3)
	out = append(out, "Source")
	out = append(out, cols...)
	out = append(out, "Quantité", "Total")
	return out
}

// Rows projects the order lines onto the column selection.
func Rows(lines []order.Line, cols []string) []Row {
	out := make([]Row, len(lines))
	for i, l := range lines {
		values := make([]string, len(cols))
		for j, c := range cols {
			values[j] = l.Product.Field(c)
		}
		out[i] = Row{
			Source:     string(l.Product.Source),
			Values:     values,
			Quantity:   l.Quantity,
			PriceCents: money.ParseCentsValue(l.Product.Fields[catalog.FieldPrice]),
			TotalCents: l.TotalCents(),
		}
	}
	return out
}

// Filename builds the export file name, date-stamped the way the
// download always was: commande_2026-08-31.csv.
func Filename(ext string) string {
	return FilenameAt(time.Now(), ext)
}

// FilenameAt is Filename with an explicit clock.
func FilenameAt(t time.Time, ext string) string {
	return "commande_" + t.Format("2006-01-02") + "." + ext
}
