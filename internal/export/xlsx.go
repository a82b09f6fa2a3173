package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

const sheet = "Sheet1"

// WriteXLSX writes orders as a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, orders []model.Order) error {
	if err := ensureRows(orders); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx header style: %w", err)
	}

	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return fmt.Errorf("xlsx header style: %w", err)
	}

	for r, o := range orders {
		for c, v := range row(o) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx row %d: %w", r+2, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 18); err != nil {
		return fmt.Errorf("xlsx widths: %w", err)
	}

	return f.Write(w)
}
