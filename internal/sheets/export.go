package sheets

import (
	"context"
	"fmt"
	"log"

	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/DhavalSuthar-24/lovacko/internal/report"
)

// Export describes where a report was written.
type Export struct {
	SpreadsheetID string `json:"spreadsheetId"`
	Sheet         string `json:"sheet"`
	URL           string `json:"url"`
}

// highlightCell is a zero based row index whose first cell gets a podium color.
type highlightCell struct {
	row       int64
	highlight report.Highlight
}

// layout converts a document into sheet values and the rank cells to color.
func layout(doc report.Document) ([][]interface{}, []highlightCell) {
	lines := report.Lines(doc)
	values := make([][]interface{}, len(lines))
	var cells []highlightCell
	for i, l := range lines {
		row := make([]interface{}, len(l.Cells))
		for j, c := range l.Cells {
			row[j] = c
		}
		values[i] = row
		if l.Highlight != report.HighlightNone {
			cells = append(cells, highlightCell{row: int64(i), highlight: l.Highlight})
		}
	}
	return values, cells
}

// Export writes doc into a tab named after its file name, replacing the
// values and formatting the tab held before.
func (c *Client) Export(ctx context.Context, doc report.Document) (Export, error) {
	tab := doc.FileName
	sheetID, err := c.ensureSheet(ctx, tab)
	if err != nil {
		return Export{}, err
	}

	if _, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, tab+"!A:Z", &sheetsv4.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return Export{}, fmt.Errorf("clear %s: %w", tab, err)
	}

	values, cells := layout(doc)
	vr := &sheetsv4.ValueRange{Values: values}
	if _, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, tab+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return Export{}, fmt.Errorf("write %s: %w", tab, err)
	}

	if err := c.colorRanks(ctx, sheetID, cells); err != nil {
		return Export{}, err
	}

	log.Printf("[SHEETS] Exported %d rows to %s", len(values), tab)
	return Export{
		SpreadsheetID: c.spreadsheetID,
		Sheet:         tab,
		URL:           fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", c.spreadsheetID, sheetID),
	}, nil
}

func (c *Client) ensureSheet(ctx context.Context, title string) (int64, error) {
	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}

	resp, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			AddSheet: &sheetsv4.AddSheetRequest{
				Properties: &sheetsv4.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("add sheet %s: %w", title, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return 0, fmt.Errorf("add sheet %s: empty reply", title)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (c *Client) colorRanks(ctx context.Context, sheetID int64, cells []highlightCell) error {
	_, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: formatRequests(sheetID, cells),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("color ranks: %w", err)
	}
	return nil
}

// formatRequests clears the formatting of the whole tab, then colors the rank
// cells. Requests of one batch apply in order.
func formatRequests(sheetID int64, cells []highlightCell) []*sheetsv4.Request {
	requests := make([]*sheetsv4.Request, 0, len(cells)+1)
	requests = append(requests, &sheetsv4.Request{RepeatCell: &sheetsv4.RepeatCellRequest{
		Range:  &sheetsv4.GridRange{SheetId: sheetID},
		Cell:   &sheetsv4.CellData{},
		Fields: "userEnteredFormat",
	}})
	for _, cell := range cells {
		requests = append(requests, &sheetsv4.Request{RepeatCell: rankFormat(sheetID, cell)})
	}
	return requests
}

func rankFormat(sheetID int64, cell highlightCell) *sheetsv4.RepeatCellRequest {
	r, g, b, light := cell.highlight.RGB()
	text := &sheetsv4.Color{}
	if light {
		text = &sheetsv4.Color{Red: 1, Green: 1, Blue: 1}
	}
	return &sheetsv4.RepeatCellRequest{
		Range: &sheetsv4.GridRange{
			SheetId:          sheetID,
			StartRowIndex:    cell.row,
			EndRowIndex:      cell.row + 1,
			StartColumnIndex: 0,
			EndColumnIndex:   1,
		},
		Cell: &sheetsv4.CellData{
			UserEnteredFormat: &sheetsv4.CellFormat{
				BackgroundColor: &sheetsv4.Color{
					Red:   float64(r) / 255,
					Green: float64(g) / 255,
					Blue:  float64(b) / 255,
				},
				TextFormat: &sheetsv4.TextFormat{ForegroundColor: text, Bold: true},
			},
		},
		Fields: "userEnteredFormat(backgroundColor,textFormat)",
	}
}
