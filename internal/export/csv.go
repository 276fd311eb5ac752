// Package export renders reservation documents into flat output
// formats: CSV, HTML, JSON, YAML and aligned text tables.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/pkg/utils"
)

// ContentTypeCSV is the content type served with CSV attachments.
const ContentTypeCSV = "text/csv; charset=utf-8"

// utf8BOM is prepended so spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV serializes flattened rows as comma-separated text with a header
// row and a UTF-8 byte-order mark. Columns a row does not carry are
// left empty.
func CSV(rows []document.Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(document.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(document.Columns))
	for _, row := range rows {
		for i, col := range document.Columns {
			record[i] = utils.Stringify(row[col])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
