package export

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/diewo77/go-mercuriale/internal/money"
	"github.com/diewo77/go-mercuriale/internal/order"
)

// WritePDF writes the order as an A4 landscape table with a header
// band and a grand-total row.
func WritePDF(w io.Writer, lines []order.Line, cols []string, totalCents int64) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr("Commande — mercuriales"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(Filename("pdf")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	headers := Headers(cols)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	widths := columnWidths(len(cols), usable)

	// header band
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range Rows(lines, cols) {
		pdf.CellFormat(widths[0], 6, tr(row.Source), "1", 0, "L", false, 0, "")
		for j, v := range row.Values {
			pdf.CellFormat(widths[j+1], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.CellFormat(widths[len(widths)-2], 6, strconv.Itoa(row.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[len(widths)-1], 6, tr(money.FormatCents(row.TotalCents)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// grand total
	pdf.SetFont("Arial", "B", 10)
	var labelW float64
	for _, w := range widths[:len(widths)-1] {
		labelW += w
	}
	pdf.CellFormat(labelW, 7, tr("Total de la commande"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[len(widths)-1], 7, tr(money.FormatCents(totalCents)), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}

// columnWidths splits the usable width: fixed source, quantity and
// total columns, the rest shared by the selected data columns.
func columnWidths(dataCols int, usable float64) []float64 {
	const (
		srcW = 30.0
		qtyW = 20.0
		totW = 30.0
	)
	widths := make([]float64, 0, dataCols+3)
	widths = append(widths, srcW)
	if dataCols > 0 {
		each := (usable - srcW - qtyW - totW) / float64(dataCols)
		for i := 0; i < dataCols; i++ {
			widths = append(widths, each)
		}
	}
	return append(widths, qtyW, totW)
}
