package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/diewo77/go-mercuriale/internal/money"
	"github.com/diewo77/go-mercuriale/internal/order"
)

// bom keeps accented characters intact when the file is opened by
// Excel or LibreOffice on a French system.
const bom = "\uFEFF"

// WriteCSV writes the order as a semicolon-separated document: BOM
// prefix, every cell double-quoted with internal quotes doubled,
// newline-joined rows, totals with a comma decimal separator.
func WriteCSV(w io.Writer, lines []order.Line, cols []string) error {
	var b strings.Builder
	b.WriteString(bom)
	writeCSVRow(&b, Headers(cols))
	for _, row := range Rows(lines, cols) {
		cells := make([]string, 0, len(cols)+3)
		cells = append(cells, row.Source)
		cells = append(cells, row.Values...)
		cells = append(cells, strconv.Itoa(row.Quantity), money.FormatCentsPlain(row.TotalCents))
		b.WriteByte('\n')
		writeCSVRow(&b, cells)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeCSVRow quotes every cell unconditionally; encoding/csv only
// quotes when it has to, and the consumers of these files expect the
// quoted form on every cell.
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}
