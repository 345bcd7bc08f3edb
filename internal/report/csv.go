package report

import (
	"encoding/csv"
	"io"
	"strings"
)

// Lines flattens doc into rows of cells, top to bottom, the way tabular
// renderers lay it out. Table rows keep their highlight; every other line has
// none. Lines have varying lengths and empty lines separate sections.
func Lines(doc Document) []Row {
	var rows []Row
	line := func(cells ...string) {
		rows = append(rows, Row{Cells: cells})
	}

	line(doc.Title)
	line(doc.Subtitle)
	for _, s := range []string{doc.Date, doc.Category, doc.Formula} {
		if s != "" {
			line(s)
		}
	}

	for _, t := range doc.Tables {
		line()
		if t.Title != "" {
			line(t.Title)
		}
		line(t.Columns...)
		rows = append(rows, t.Rows...)
	}

	if len(doc.Rosters) > 0 {
		line()
		line("Sastav Ekipa")
		for _, r := range doc.Rosters {
			line(r.Heading, strings.Join(r.Members, ", "))
		}
	}

	line()
	line(doc.Footer)
	return rows
}

// WriteCSV renders doc as CSV.
func WriteCSV(w io.Writer, doc Document) error {
	lines := Lines(doc)
	records := make([][]string, len(lines))
	for i, l := range lines {
		records[i] = l.Cells
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
