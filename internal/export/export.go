// Package export produces XLSX workbooks of repaired item records for
// manual review and downstream spreadsheet tooling.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/kaiyo-foods/receiptlines/internal/entity"
)

const sheet = "Items"

var headers = []string{
	"UPC",
	"Item #",
	"Product Name",
	"Canonical Name",
	"Size",
	"UoM",
	"Qty",
	"Unit Price",
	"Total",
	"Raw Line",
}

// ItemsXLSX returns an XLSX workbook (as bytes) with one row per item
// record, in sequence order.
func ItemsXLSX(items []*entity.ItemRecord, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, it := range items {
		name := it.BestName()
		values := []any{
			it.UPC,
			it.ItemNumber,
			name,
			it.CanonicalName,
			it.Size,
			it.UOM,
			it.Quantity,
			it.UnitPrice,
			it.TotalPrice,
			it.RawLine,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	logger.Info("export.ok", "items", len(items), "bytes", buf.Len())
	return buf.Bytes(), nil
}
