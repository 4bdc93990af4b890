package salaries

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"hermannm.dev/devlog/log"
	"hermannm.dev/salaries/column"
	"hermannm.dev/wrap"
)

// DataSource is implemented by the spreadsheet readers (xlsx, csv, googlesheets).
type DataSource interface {
	ReadHeaderRow() (row []string, err error)
	ReadRow() (row []string, rowNumber int, done bool, err error)
}

// Record is one row of the salary spreadsheet, holding the raw text of each cell we read.
type Record struct {
	RowNumber    int
	Club         string
	Position     string
	Nationality  string
	Age          string
	GrossPerYear string
}

func (record Record) Field(category Category) string {
	switch category {
	case CategoryClub:
		return record.Club
	case CategoryPosition:
		return record.Position
	case CategoryNationality:
		return record.Nationality
	case CategoryAge:
		return record.Age
	default:
		return ""
	}
}

// Dataset is the immutable record set of one pipeline run.
type Dataset struct {
	ID      uuid.UUID
	Records []Record
}

// Load reads the header row and all data rows from the given source. Fails with a LoadError if
// a required column is missing, if a row cannot be read, or if there are no data rows.
func Load(source DataSource) (Dataset, error) {
	header, err := source.ReadHeaderRow()
	if err != nil {
		return Dataset{}, newLoadError(err, "failed to read spreadsheet header row")
	}

	columns, err := findRequiredColumns(header)
	if err != nil {
		return Dataset{}, newLoadError(err, "invalid spreadsheet header")
	}

	var records []Record
	for {
		row, rowNumber, done, err := source.ReadRow()
		if done {
			break
		}
		if err != nil {
			return Dataset{}, newLoadErrorf(err, "failed to read row %d of spreadsheet", rowNumber)
		}

		records = append(records, newRecord(row, rowNumber, columns))
	}

	if len(records) == 0 {
		return Dataset{}, newLoadError(nil, "spreadsheet has no data rows")
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return Dataset{}, wrap.Error(err, "failed to generate dataset ID")
	}

	log.Debug(
		"loaded salary records",
		slog.String("datasetId", id.String()),
		slog.Int("records", len(records)),
	)

	return Dataset{ID: id, Records: records}, nil
}

type requiredColumns struct {
	club         column.Column
	position     column.Column
	nationality  column.Column
	age          column.Column
	grossPerYear column.Column
}

func findRequiredColumns(header []string) (requiredColumns, error) {
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		// Keeps the first occurrence of duplicated names.
		if _, exists := indexes[name]; !exists {
			indexes[name] = i
		}
	}

	var errs []error
	lookup := func(name string, dataType column.DataType) column.Column {
		index, ok := indexes[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing column '%s'", name))
			return column.Column{}
		}
		return column.Column{Name: name, Index: index, DataType: dataType}
	}

	columns := requiredColumns{
		club:         lookup(CategoryClub.ColumnName(), column.DataTypeText),
		position:     lookup(CategoryPosition.ColumnName(), column.DataTypeText),
		nationality:  lookup(CategoryNationality.ColumnName(), column.DataTypeText),
		age:          lookup(CategoryAge.ColumnName(), column.DataTypeText),
		grossPerYear: lookup(ColumnGrossPerYear, column.DataTypeFloat),
	}

	if len(errs) > 0 {
		return requiredColumns{}, wrap.Errors("spreadsheet is missing required columns", errs...)
	}

	if errs := column.ValidateColumns([]column.Column{
		columns.club, columns.position, columns.nationality, columns.age, columns.grossPerYear,
	}); len(errs) > 0 {
		return requiredColumns{}, wrap.Errors("invalid required columns", errs...)
	}

	return columns, nil
}

func newRecord(row []string, rowNumber int, columns requiredColumns) Record {
	// Readers may drop trailing blank cells, so missing fields are read as blank.
	field := func(column column.Column) string {
		if column.Index < len(row) {
			return row[column.Index]
		}
		return ""
	}

	return Record{
		RowNumber:    rowNumber,
		Club:         field(columns.club),
		Position:     field(columns.position),
		Nationality:  field(columns.nationality),
		Age:          field(columns.age),
		GrossPerYear: field(columns.grossPerYear),
	}
}

var errBlankValue = errors.New("value is blank")
