package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupported = errors.New("unsupported file type")

// Record is one data row keyed by header. Line is 1-based in the source
// sheet.
type Record struct {
	Line   int
	Fields map[string]string
}

type Table struct {
	Headers []string
	Records []Record
}

// Read picks a reader by file extension. headerRow is 1-based.
func Read(r io.Reader, filename string, headerRow int) (Table, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r, headerRow)
	case ".csv", ".txt":
		rows, err = readCSV(r)
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupported, filename)
	}
	if err != nil {
		return Table{}, err
	}
	return buildTable(rows, headerRow), nil
}

func buildTable(rows [][]string, headerRow int) Table {
	if len(rows) == 0 {
		return Table{}
	}
	h := pickHeader(rows, headerRow)
	return Table{Headers: h, Records: toRecords(rows, h, headerRow)}
}

// pickHeader takes the header row, naming blank cells "Column N" and
// suffixing duplicates.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	seen := make(map[string]int, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[v]; n > 0 {
			seen[v]++
			v = fmt.Sprintf("%s (%d)", v, n+1)
		} else {
			seen[v] = 1
		}
		out[i] = v
	}
	return out
}

// toRecords maps the rows below the header, skipping blank ones.
func toRecords(rows [][]string, headers []string, headerRow int) []Record {
	var out []Record
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, Record{Line: r + 1, Fields: m})
		}
	}
	return out
}
