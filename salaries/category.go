package salaries

import (
	"hermannm.dev/enumnames"
)

// Category is one of the dimensions that salary expenditure can be grouped by. The name of each
// category is the spreadsheet column it reads from.
type Category uint8

const (
	CategoryClub Category = iota + 1
	CategoryPosition
	CategoryNationality
	CategoryAge
)

// Categories in the order they are presented to users.
var Categories = []Category{CategoryClub, CategoryPosition, CategoryNationality, CategoryAge}

const ColumnGrossPerYear = "GROSS P/Y"

var categoryNames = enumnames.NewMap(map[Category]string{
	CategoryClub:        "CLUB",
	CategoryPosition:    "POS SPECIFIC",
	CategoryNationality: "NATIONALITY",
	CategoryAge:         "AGE",
})

func (category Category) IsValid() bool {
	return category >= CategoryClub && category <= CategoryAge
}

func (category Category) String() string {
	return categoryNames.GetNameOrFallback(category, "INVALID_CATEGORY")
}

func (category Category) ColumnName() string {
	return category.String()
}

func (category Category) MarshalJSON() ([]byte, error) {
	return categoryNames.MarshalToNameJSON(category)
}

func (category *Category) UnmarshalJSON(bytes []byte) error {
	return categoryNames.UnmarshalFromNameJSON(bytes, category)
}

// ParseCategory matches the given name exactly (case-sensitive) against category names.
func ParseCategory(name string) (category Category, ok bool) {
	for _, category := range Categories {
		if category.String() == name {
			return category, true
		}
	}
	return 0, false
}

// RequiredColumns lists the spreadsheet columns the loader expects in the header row.
func RequiredColumns() []string {
	columns := make([]string, 0, len(Categories)+1)
	for _, category := range Categories {
		columns = append(columns, category.ColumnName())
	}
	return append(columns, ColumnGrossPerYear)
}
