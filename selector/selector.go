package selector

import (
	"fmt"

	"hermannm.dev/salaries/salaries"
)

const YAxisLabel = salaries.ColumnGrossPerYear

// RenderRequest is everything the chart renderer needs to draw one report.
type RenderRequest struct {
	Report     salaries.Report `json:"report"`
	XAxisLabel string          `json:"xAxisLabel"`
	YAxisLabel string          `json:"yAxisLabel"`
	Title      string          `json:"title"`
}

type option struct {
	label    string
	title    string
	category salaries.Category
}

var options = []option{
	{
		label:    "1. ANUAL SALARIES PER CLUB",
		title:    "ANUAL SALARIES PER CLUB",
		category: salaries.CategoryClub,
	},
	{
		label:    "2. ANUAL SALARIES PER POSITION",
		title:    "ANUAL SALARIES PER POSITION",
		category: salaries.CategoryPosition,
	},
	{
		label:    "3. ANUAL SALARIES PER NATIONALITY",
		title:    "ANUAL SALARIES PER NATIONALITY",
		category: salaries.CategoryNationality,
	},
	{
		label:    "4. ANUAL SALARIES PER AGE",
		title:    "ANUAL SALARIES PER AGE",
		category: salaries.CategoryAge,
	},
}

// Options returns the labels of the expenditure choices, in the order they are presented.
func Options() []string {
	labels := make([]string, 0, len(options))
	for _, option := range options {
		labels = append(labels, option.label)
	}
	return labels
}

// DefaultOption is the choice shown before the user has picked one.
func DefaultOption() string {
	return options[0].label
}

// InvalidChoiceError is returned by Dispatch when the choice is not one of Options. It is not
// fatal: callers report it and render nothing.
type InvalidChoiceError struct {
	Choice string
}

func (err *InvalidChoiceError) Error() string {
	return fmt.Sprintf(
		"invalid choice '%s': must be one of the %d listed expenditure types",
		err.Choice,
		len(options),
	)
}

// Dispatch picks the report matching the given choice, and pairs it with the chart title and
// axis labels for that choice.
func Dispatch(choice string, reports salaries.Reports) (RenderRequest, error) {
	for _, option := range options {
		if option.label != choice {
			continue
		}

		report, ok := reports[option.category]
		if !ok {
			return RenderRequest{}, fmt.Errorf(
				"no salary report calculated for category '%s'", option.category,
			)
		}

		return RenderRequest{
			Report:     report,
			XAxisLabel: option.category.ColumnName(),
			YAxisLabel: YAxisLabel,
			Title:      option.title,
		}, nil
	}

	return RenderRequest{}, &InvalidChoiceError{Choice: choice}
}
