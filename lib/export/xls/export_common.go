package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Calibri"

// sheetWriter appends rows to one sheet and remembers the last written row.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) writeRow(values ...interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(w.sheet, cell, &values)
}

func (w *sheetWriter) skipRow() {
	w.row++
}

// styleRows applies style to columns 1..cols of rows from..to.
func (w *sheetWriter) styleRows(from, to, cols int, style *excelize.Style) error {
	id, err := w.f.NewStyle(style)
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, from)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, to)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, first, last, id)
}

// setWidths sizes columns left to right.
func (w *sheetWriter) setWidths(widths []float64) error {
	for idx, width := range widths {
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return err
		}
		if err = w.f.SetColWidth(w.sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func titleStyle() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Bold: true, Family: fontFamily, Size: 12},
	}
}

func headerStyle() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	}
}

func dataStyle() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	}
}
