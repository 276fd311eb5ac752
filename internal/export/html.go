package export

import (
	"html"
	"strings"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/pkg/utils"
)

// ContentTypeHTML is the content type served with HTML attachments.
const ContentTypeHTML = "text/html; charset=utf-8"

var sectionTitles = map[string]string{
	document.SectionHotels:       "Hotels",
	document.SectionGuests:       "Guests",
	document.SectionReservations: "Reservations",
}

// HTML renders the nested document into one table per present section,
// each preceded by a heading. Booleans display as Yes/No and every
// cell value is HTML-escaped.
func HTML(doc map[string]interface{}) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Hotel Reservations</title></head>\n<body>\n")

	for _, section := range document.Sections {
		if _, ok := doc[section]; !ok {
			continue
		}
		rows, err := document.SectionRows(doc, section)
		if err != nil {
			return nil, err
		}

		sb.WriteString("<h2>" + sectionTitles[section] + "</h2>\n")
		sb.WriteString("<table border=\"1\">\n<tr>")
		for _, col := range document.SectionColumns[section] {
			sb.WriteString("<th>" + html.EscapeString(col) + "</th>")
		}
		sb.WriteString("</tr>\n")

		for _, row := range rows {
			sb.WriteString("<tr>")
			for _, col := range document.SectionColumns[section] {
				cell := utils.Stringify(row[col])
				if col == "room_available" {
					cell = utils.YesNo(row[col])
				}
				sb.WriteString("<td>" + html.EscapeString(cell) + "</td>")
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</table>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String()), nil
}
