package column

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"hermannm.dev/enumnames"
)

type Column struct {
	Name     string   `json:"name"`
	Index    int      `json:"index"`
	DataType DataType `json:"dataType"`
	Optional bool     `json:"optional"`
}

type DataType uint8

const (
	DataTypeText DataType = iota + 1
	DataTypeInteger
	DataTypeFloat
)

var dataTypeNames = enumnames.NewMap(map[DataType]string{
	DataTypeText:    "TEXT",
	DataTypeInteger: "INTEGER",
	DataTypeFloat:   "FLOAT",
})

func (dataType DataType) IsValid() bool {
	return dataType >= DataTypeText && dataType <= DataTypeFloat
}

func (dataType DataType) IsNumeric() bool {
	return dataType == DataTypeInteger || dataType == DataTypeFloat
}

func (dataType DataType) String() string {
	return dataTypeNames.GetNameOrFallback(dataType, "INVALID_DATA_TYPE")
}

func (dataType DataType) MarshalJSON() ([]byte, error) {
	return dataTypeNames.MarshalToNameJSON(dataType)
}

func (dataType *DataType) UnmarshalJSON(bytes []byte) error {
	return dataTypeNames.UnmarshalFromNameJSON(bytes, dataType)
}

func (column Column) Validate() error {
	if column.Name == "" {
		return errors.New("column name is blank")
	}

	if column.Index < 0 {
		return fmt.Errorf("negative column index %d", column.Index)
	}

	if !column.DataType.IsValid() {
		return errors.New("invalid column data type")
	}

	return nil
}

func ValidateColumns(columns []Column) []error {
	var errs []error

	for i, column := range columns {
		if err := column.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("column %d ('%s'): %w", i, column.Name, err))
		}
	}

	return errs
}

// DeduceDataType returns the narrowest data type that every given field fits in. A single text
// field (including a blank one) makes the whole column text.
func DeduceDataType(fields []string) DataType {
	if len(fields) == 0 {
		return DataTypeText
	}

	deduced := DataTypeInteger
	for _, field := range fields {
		switch DeduceFieldDataType(field) {
		case DataTypeText:
			return DataTypeText
		case DataTypeFloat:
			deduced = DataTypeFloat
		}
	}

	return deduced
}

// DeduceFieldDataType returns the type of a single field. Numeric types are only returned for
// fields that decimal.NewFromString also accepts, so that hex floats like "0x1p5" count as text.
func DeduceFieldDataType(field string) DataType {
	if field == "" {
		return DataTypeText
	}
	if _, err := decimal.NewFromString(field); err != nil {
		return DataTypeText
	}
	if _, err := strconv.ParseInt(field, 10, 64); err == nil {
		return DataTypeInteger
	}
	if value, err := strconv.ParseFloat(field, 64); err == nil {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return DataTypeText
		}
		return DataTypeFloat
	}
	return DataTypeText
}
