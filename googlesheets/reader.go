package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"hermannm.dev/wrap"
)

type Config struct {
	SpreadsheetID string
	// A1 notation, e.g. "Salaries!A:F". A range without a sheet name reads the first sheet.
	Range string
	// Path to a service account JSON key. If blank, application default credentials are used.
	CredentialsFile string
}

// Reader reads the values of a Google Sheets range. All values are fetched up front, so the
// reader holds no connection after NewReader returns.
type Reader struct {
	values     [][]any
	currentRow int
}

func NewReader(ctx context.Context, config Config) (*Reader, error) {
	if config.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	options := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if config.CredentialsFile != "" {
		options = append(options, option.WithCredentialsFile(config.CredentialsFile))
	}

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, wrap.Error(err, "failed to create Google Sheets service")
	}

	response, err := service.Spreadsheets.Values.
		Get(config.SpreadsheetID, config.Range).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrap.Errorf(
			err,
			"failed to read range '%s' of spreadsheet '%s'",
			config.Range,
			config.SpreadsheetID,
		)
	}

	return newReaderFromValues(response.Values), nil
}

func newReaderFromValues(values [][]any) *Reader {
	return &Reader{values: values, currentRow: 0}
}

// Implements salaries.DataSource
func (reader *Reader) ReadRow() (row []string, rowNumber int, done bool, err error) {
	if reader.currentRow >= len(reader.values) {
		return nil, 0, true, nil
	}

	values := reader.values[reader.currentRow]
	reader.currentRow++

	row = make([]string, 0, len(values))
	for _, value := range values {
		row = append(row, cellToString(value))
	}

	return row, reader.currentRow, false, nil
}

// Implements salaries.DataSource
func (reader *Reader) ReadHeaderRow() (row []string, err error) {
	if reader.currentRow != 0 {
		return nil, errors.New("tried to read header row after reading previous rows")
	}

	row, _, done, err := reader.ReadRow()
	if done {
		return nil, errors.New("spreadsheet range ended before header row")
	}
	return row, err
}

// With UNFORMATTED_VALUE, the API decodes numbers as float64, and everything else as strings or
// booleans.
func cellToString(value any) string {
	switch value := value.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}
