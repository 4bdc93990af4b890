package salaries

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
	"hermannm.dev/devlog/log"
	"hermannm.dev/salaries/column"
	"hermannm.dev/wrap"
)

// DeduceAgeType inspects the AGE cell of every record, and returns a numeric data type only if
// all of them are numbers. Otherwise it returns column.DataTypeText, meaning every AGE value is
// grouped by its text.
func DeduceAgeType(records []Record) column.DataType {
	ages := make([]string, 0, len(records))
	for _, record := range records {
		ages = append(ages, record.Age)
	}
	return column.DeduceDataType(ages)
}

// Aggregate groups the records by the given category, and sums GROSS P/Y for each group. The
// returned report has one entry per distinct group key, sorted by descending total (ties keep
// the order in which keys were first seen).
//
// ageType is the result of DeduceAgeType over the full record set, and is only used when
// grouping by CategoryAge.
func Aggregate(records []Record, category Category, ageType column.DataType) (Report, error) {
	if !category.IsValid() {
		return Report{}, fmt.Errorf("invalid category %d", category)
	}

	numericKeys := category == CategoryAge && ageType.IsNumeric()

	entries := make([]Entry, 0)
	entryIndexes := make(map[string]int)

	for _, record := range records {
		grossPerYear, err := record.ParseGrossPerYear()
		if err != nil {
			return Report{}, err
		}

		key, err := record.groupKey(category, numericKeys)
		if err != nil {
			return Report{}, err
		}

		label := key.String()
		if index, ok := entryIndexes[label]; ok {
			entries[index].Total = entries[index].Total.Add(grossPerYear)
		} else {
			entryIndexes[label] = len(entries)
			entries = append(entries, Entry{Key: key, Total: grossPerYear})
		}
	}

	slices.SortStableFunc(entries, func(entry1 Entry, entry2 Entry) int {
		return entry2.Total.Cmp(entry1.Total)
	})

	return Report{Category: category, Entries: entries}, nil
}

// AggregateAll runs the AGE pre-pass once, then aggregates the dataset by every category.
func AggregateAll(dataset Dataset) (Reports, error) {
	ageType := DeduceAgeType(dataset.Records)
	log.Debug(
		"deduced AGE column type",
		slog.String("datasetId", dataset.ID.String()),
		slog.String("dataType", ageType.String()),
	)

	reports := make(Reports, len(Categories))
	for _, category := range Categories {
		report, err := Aggregate(dataset.Records, category, ageType)
		if err != nil {
			return nil, wrap.Errorf(err, "failed to aggregate salaries per %s", category)
		}
		reports[category] = report
	}

	return reports, nil
}

// ParseGrossPerYear parses the record's annual gross salary. Blank and non-numeric values fail
// with a DataError.
func (record Record) ParseGrossPerYear() (decimal.Decimal, error) {
	return parseNumericField(record.GrossPerYear, ColumnGrossPerYear, record.RowNumber)
}

func (record Record) groupKey(category Category, numeric bool) (GroupKey, error) {
	field := record.Field(category)
	if !numeric {
		return TextKey(field), nil
	}

	number, err := parseNumericField(field, category.ColumnName(), record.RowNumber)
	if err != nil {
		return GroupKey{}, err
	}
	return NumericKey(number), nil
}

func parseNumericField(field string, columnName string, rowNumber int) (decimal.Decimal, error) {
	if field == "" {
		return decimal.Decimal{}, &DataError{
			Column: columnName, RowNumber: rowNumber, Value: field, Cause: errBlankValue,
		}
	}

	if !column.DeduceFieldDataType(field).IsNumeric() {
		return decimal.Decimal{}, &DataError{Column: columnName, RowNumber: rowNumber, Value: field}
	}

	number, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Decimal{}, &DataError{
			Column: columnName, RowNumber: rowNumber, Value: field, Cause: err,
		}
	}

	return number, nil
}
