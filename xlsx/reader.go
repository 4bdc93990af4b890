package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"hermannm.dev/wrap"
)

// Reader reads the rows of one sheet in an Excel workbook. Cells are read as their raw values,
// so number formats (currency symbols, thousand separators) do not leak into the data.
type Reader struct {
	file       *excelize.File
	sheet      string
	rows       [][]string
	currentRow int
}

// Open opens the workbook at the given path, and reads the given sheet (or the first sheet if
// sheet is blank). The returned reader must be closed.
func Open(path string, sheet string) (*Reader, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, wrap.Errorf(err, "failed to open workbook '%s'", path)
	}

	reader, err := newReader(file, sheet)
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			return nil, wrap.Errors("failed to read workbook", err, closeErr)
		}
		return nil, err
	}

	return reader, nil
}

// NewReader reads a workbook from the given stream.
func NewReader(workbook io.Reader, sheet string) (*Reader, error) {
	file, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, wrap.Error(err, "failed to parse workbook")
	}

	return newReader(file, sheet)
}

func newReader(file *excelize.File, sheet string) (*Reader, error) {
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, wrap.Errorf(err, "failed to read rows of sheet '%s'", sheet)
	}

	return &Reader{file: file, sheet: sheet, rows: rows, currentRow: 0}, nil
}

func (reader *Reader) Sheet() string {
	return reader.sheet
}

// Implements salaries.DataSource. Fully blank rows are skipped.
func (reader *Reader) ReadRow() (row []string, rowNumber int, done bool, err error) {
	for reader.currentRow < len(reader.rows) {
		row = reader.rows[reader.currentRow]
		reader.currentRow++

		if !isBlank(row) {
			return row, reader.currentRow, false, nil
		}
	}

	return nil, 0, true, nil
}

// Implements salaries.DataSource
func (reader *Reader) ReadHeaderRow() (row []string, err error) {
	if reader.currentRow != 0 {
		return nil, errors.New("tried to read header row after reading previous rows")
	}

	row, _, done, _ := reader.ReadRow()
	if done {
		return nil, fmt.Errorf("sheet '%s' ended before header row", reader.sheet)
	}
	return row, nil
}

func (reader *Reader) Close() error {
	if err := reader.file.Close(); err != nil {
		return wrap.Error(err, "failed to close workbook")
	}
	return nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
