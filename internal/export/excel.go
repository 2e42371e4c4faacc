// Package export renders the recipe table as an Excel workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
)

const sheetName = "食譜"

var headers = []any{
	"食譜名稱", "分組", "食材", "重量 (g)", "百分比", "說明", "步驟",
	"建立時間", "上火溫度", "下火溫度", "烘烤時間", "旋風", "蒸汽",
}

// Workbook builds an xlsx file with one row per ingredient row of the
// recipe table. Percent cells carry the stored canonical fraction;
// convection/steam render as 是/否.
func Workbook(rows []recipes.Row) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		var percent any
		if r.Percent != nil {
			percent = *r.Percent
		}
		excelRow := []any{
			r.Title,
			r.GroupName,
			r.Ingredient,
			r.Weight,
			percent,
			r.Description,
			r.Steps,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.TopHeat,
			r.BottomHeat,
			r.BakeTime,
			yesNo(r.Convection),
			yesNo(r.Steam),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func yesNo(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
