package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hermannm.dev/salaries/config"
	"hermannm.dev/salaries/csv"
	"hermannm.dev/salaries/googlesheets"
	"hermannm.dev/salaries/salaries"
	"hermannm.dev/salaries/xlsx"
	"hermannm.dev/wrap"
)

// Opener opens the salary data source selected in config. Implements salaries.SourceOpener.
type Opener struct {
	config config.Config
}

func NewOpener(config config.Config) Opener {
	return Opener{config: config}
}

func (opener Opener) OpenSource(
	ctx context.Context,
) (source salaries.DataSource, closer io.Closer, err error) {
	switch opener.config.Source {
	case config.SourceFile:
		return openFile(opener.config.File)
	case config.SourceGoogleSheets:
		sheets := opener.config.GoogleSheets
		reader, err := googlesheets.NewReader(ctx, googlesheets.Config{
			SpreadsheetID:   sheets.SpreadsheetID,
			Range:           sheets.Range,
			CredentialsFile: sheets.CredentialsFile,
		})
		if err != nil {
			return nil, nil, wrap.Error(err, "failed to read salaries from Google Sheets")
		}
		return reader, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported salary source '%s'", opener.config.Source)
	}
}

func (opener Opener) Description() string {
	switch opener.config.Source {
	case config.SourceGoogleSheets:
		return fmt.Sprintf(
			"Google Sheets spreadsheet '%s' (range '%s')",
			opener.config.GoogleSheets.SpreadsheetID,
			opener.config.GoogleSheets.Range,
		)
	default:
		return fmt.Sprintf("file '%s'", opener.config.File.Path)
	}
}

func openFile(file config.File) (salaries.DataSource, io.Closer, error) {
	switch extension := strings.ToLower(filepath.Ext(file.Path)); extension {
	case ".xlsx", ".xlsm":
		reader, err := xlsx.Open(file.Path, file.Sheet)
		if err != nil {
			return nil, nil, err
		}
		return reader, reader, nil
	case ".csv":
		csvFile, err := os.Open(file.Path)
		if err != nil {
			return nil, nil, wrap.Errorf(err, "failed to open CSV file '%s'", file.Path)
		}

		reader, err := csv.NewReader(csvFile, salaries.RequiredColumns())
		if err != nil {
			if closeErr := csvFile.Close(); closeErr != nil {
				return nil, nil, wrap.Errors("failed to read CSV file", err, closeErr)
			}
			return nil, nil, wrap.Errorf(err, "failed to read CSV file '%s'", file.Path)
		}
		return reader, csvFile, nil
	default:
		return nil, nil, fmt.Errorf(
			"unsupported file extension '%s' for salary file '%s' (must be .xlsx, .xlsm or .csv)",
			extension,
			file.Path,
		)
	}
}
