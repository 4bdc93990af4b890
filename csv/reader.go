package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"hermannm.dev/wrap"
)

const (
	maxRowsToCheckForDelimiter = 20
	// Spreadsheet applications commonly prefix exported UTF-8 CSV files with this.
	byteOrderMark = "\ufeff"
)

type Reader struct {
	inner      *csv.Reader
	currentRow int
}

// NewReader deduces the field delimiter from the first lines of the given file, then resets the
// file to its start. headerColumns are column names the header row is expected to contain; a
// delimiter that splits the header into those names is preferred. The header row is left for
// ReadHeaderRow.
func NewReader(csvFile io.ReadSeeker, headerColumns []string) (*Reader, error) {
	delimiter, err := DeduceFieldDelimiter(
		csvFile, maxRowsToCheckForDelimiter, DefaultDelimitersToCheck, headerColumns,
	)
	if err != nil {
		return nil, wrap.Error(err, "failed to deduce CSV field delimiter")
	}

	return &Reader{inner: newInnerReader(csvFile, delimiter), currentRow: 0}, nil
}

func newInnerReader(csvFile io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(csvFile)
	reader.ReuseRecord = true
	reader.Comma = delimiter
	return reader
}

// Implements salaries.DataSource
func (reader *Reader) ReadRow() (row []string, rowNumber int, done bool, err error) {
	reader.currentRow++

	row, err = reader.inner.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, true, nil
		} else {
			return nil, reader.currentRow, false, err
		}
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
		return nil, errors.New("csv file ended before header row")
	}
	if err != nil {
		return nil, err
	}

	// Copies the row, since the inner reader reuses its record slice.
	header := append([]string(nil), row...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}
	return header, nil
}
