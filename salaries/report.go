package salaries

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// GroupKey is the value that records are grouped by. Numeric keys are only produced for the AGE
// category, when every AGE cell in the dataset is a number.
type GroupKey struct {
	text    string
	number  decimal.Decimal
	numeric bool
}

func TextKey(text string) GroupKey {
	return GroupKey{text: text}
}

func NumericKey(number decimal.Decimal) GroupKey {
	return GroupKey{number: number, numeric: true}
}

func (key GroupKey) IsNumeric() bool {
	return key.numeric
}

func (key GroupKey) Number() decimal.Decimal {
	return key.number
}

// String returns the key's label: the raw text for text keys, and the normalized number for
// numeric keys (so "25" and "25.0" both become "25").
func (key GroupKey) String() string {
	if key.numeric {
		return key.number.String()
	}
	return key.text
}

func (key GroupKey) MarshalJSON() ([]byte, error) {
	if key.numeric {
		return []byte(key.number.String()), nil
	}
	return json.Marshal(key.text)
}

type Entry struct {
	Key   GroupKey        `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// Report holds total salary expenditure per group for one category, sorted by descending total.
type Report struct {
	Category Category `json:"category"`
	Entries  []Entry  `json:"entries"`
}

// Total is the sum of all entry totals, which equals the sum of GROSS P/Y over the dataset.
func (report Report) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range report.Entries {
		total = total.Add(entry.Total)
	}
	return total
}

func (report Report) Labels() []string {
	labels := make([]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		labels = append(labels, entry.Key.String())
	}
	return labels
}

// Reports holds one report per category, all derived from the same dataset.
type Reports map[Category]Report
