package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RowsAPI abstracts the handful of spreadsheet calls the repository
// needs. Row indexes are 1-based sheet rows, header included.
type RowsAPI interface {
	ReadAll(ctx context.Context) ([][]any, error)
	Append(ctx context.Context, row []any) error
	UpdateRow(ctx context.Context, rowIndex int64, row []any) error
	DeleteRow(ctx context.Context, rowIndex int64) error
}

// Client talks to one tab of one Google spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
}

// NewClient opens the spreadsheet with service-account credentials and
// resolves the numeric sheet ID of the named tab (needed for row
// deletion).
func NewClient(ctx context.Context, spreadsheetID, sheetName, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	spreadsheet, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", spreadsheetID, err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return &Client{
				svc:           svc,
				spreadsheetID: spreadsheetID,
				sheetName:     sheetName,
				sheetID:       sheet.Properties.SheetId,
			}, nil
		}
	}

	return nil, fmt.Errorf("sheet %q not found in spreadsheet %s", sheetName, spreadsheetID)
}

func (c *Client) ReadAll(ctx context.Context) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (c *Client) Append(ctx context.Context, row []any) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName, &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

func (c *Client) UpdateRow(ctx context.Context, rowIndex int64, row []any) error {
	rng := fmt.Sprintf("%s!A%d", c.sheetName, rowIndex)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	return err
}

func (c *Client) DeleteRow(ctx context.Context, rowIndex int64) error {
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    c.sheetID,
					Dimension:  "ROWS",
					StartIndex: rowIndex - 1,
					EndIndex:   rowIndex,
				},
			},
		}},
	}).Context(ctx).Do()
	return err
}
