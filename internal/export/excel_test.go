package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
)

func TestWorkbook(t *testing.T) {
	pct := 0.625
	rows := []recipes.Row{
		{
			Title: "吐司", GroupName: "主麵團", Ingredient: "高筋麵粉",
			Weight: 500, Percent: &pct, Description: "過篩", Steps: "揉麵",
			Timestamp: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			TopHeat:   200, BottomHeat: 180, BakeTime: 35,
			Convection: true, Steam: false,
		},
		{
			Title: "吐司", GroupName: "裝飾", Ingredient: "糖粉",
			Weight: 20, Steps: "揉麵",
			Timestamp: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			TopHeat:   200, BottomHeat: 180, BakeTime: 35,
		},
	}

	buf, err := Workbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{"食譜"}, f.GetSheetList())

	got, err := f.GetCellValue("食譜", "A1")
	require.NoError(t, err)
	require.Equal(t, "食譜名稱", got)

	checks := map[string]string{
		"A2": "吐司",
		"B2": "主麵團",
		"C2": "高筋麵粉",
		"D2": "500",
		"E2": "0.625",
		"H2": "2025-03-01 10:30:00",
		"L2": "是",
		"M2": "否",
		"C3": "糖粉",
		"E3": "", // no percent recorded
		"L3": "否",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("食譜", cell)
		require.NoError(t, err)
		require.Equal(t, want, got, "cell %s", cell)
	}
}

func TestWorkbookEmpty(t *testing.T) {
	buf, err := Workbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("食譜")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
