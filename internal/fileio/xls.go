package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// legacy workbooks come in whatever the exporting machine used
var xlsCharsets = []string{"utf-8", "windows-1252", "windows-1251"}

func readXLS(r io.Reader, headerRow int) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range xlsCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	// Row.LastCol is unreliable in exported files, so the width is probed
	maxCols := sheetWidth(sheet, headerRow)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, maxCols)
		if row := sheet.Row(i); row != nil {
			for j := range cols {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

func sheetWidth(sheet *xls.WorkSheet, headerRow int) int {
	const probeMax = 256
	width := 0
	for i := headerRow - 1; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := probeMax - 1; j >= width; j-- {
			if strings.TrimSpace(row.Col(j)) != "" {
				width = j + 1
				break
			}
		}
	}
	if width == 0 {
		width = 1
	}
	return width
}
