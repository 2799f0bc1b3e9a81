package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV detects the charset, decodes to UTF-8 and sniffs the delimiter.
// Statements exported from European locales are usually ';' separated
// because ',' is their decimal separator.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	peek, _ := br.Peek(4096)

	var dec io.Reader = br
	switch detectCharset(peek) {
	case "windows-1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	case "windows-1252":
		dec = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	case "iso-8859-1":
		dec = transform.NewReader(br, charmap.ISO8859_1.NewDecoder())
	case "iso-8859-15":
		dec = transform.NewReader(br, charmap.ISO8859_15.NewDecoder())
	}

	cr := csv.NewReader(dec)
	cr.Comma = sniffDelimiter(peek)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func detectCharset(peek []byte) string {
	if validUTF8(peek) {
		return "utf-8"
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return "utf-8"
	}
	return strings.ToLower(det.Charset)
}

// sniffDelimiter picks the candidate most frequent on the first line.
func sniffDelimiter(peek []byte) rune {
	line := peek
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		line = peek[:i]
	}
	best, n := ',', 0
	for _, c := range []rune{';', '\t', ','} {
		if k := bytes.Count(line, []byte(string(c))); k > n {
			best, n = c, k
		}
	}
	return best
}

// validUTF8 tolerates a rune cut off at the end of the peeked window.
func validUTF8(p []byte) bool {
	for i := 0; i < utf8.UTFMax; i++ {
		if utf8.Valid(p) {
			return true
		}
		if len(p) == 0 {
			return false
		}
		p = p[:len(p)-1]
	}
	return false
}
