package chart

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hermannm.dev/salaries/salaries"
	"hermannm.dev/salaries/selector"
)

func TestRender(t *testing.T) {
	request := selector.RenderRequest{
		Report: salaries.Report{
			Category: salaries.CategoryClub,
			Entries: []salaries.Entry{
				{Key: salaries.TextKey("FC Bayern"), Total: decimal.NewFromInt(25000000)},
				{Key: salaries.TextKey("RB Leipzig"), Total: decimal.NewFromInt(9000000)},
			},
		},
		XAxisLabel: "CLUB",
		YAxisLabel: selector.YAxisLabel,
		Title:      "ANUAL SALARIES PER CLUB",
	}

	var output bytes.Buffer
	require.NoError(t, Render(&output, request))

	html := output.String()
	assert.Contains(t, html, "ANUAL SALARIES PER CLUB")
	assert.Contains(t, html, Width)
	assert.Contains(t, html, Height)
	assert.Contains(t, html, "FC Bayern")
	assert.Contains(t, html, "RB Leipzig")
	assert.Contains(t, html, palette[0])
	assert.Contains(t, html, palette[1])
	assert.Contains(t, html, `"legend"`)
	assert.Contains(t, html, `"name":"FC Bayern"`)
	assert.Contains(t, html, `"name":"RB Leipzig"`)
}

func TestSeriesDataHasOneBar(t *testing.T) {
	data := seriesData(3, 1, 9000000)

	require.Len(t, data, 3)
	assert.Equal(t, emptyBar, data[0].Value)
	assert.Equal(t, float64(9000000), data[1].Value)
	assert.Equal(t, emptyBar, data[2].Value)
}

func TestRenderEmptyReport(t *testing.T) {
	request := selector.RenderRequest{
		Report:     salaries.Report{Category: salaries.CategoryAge},
		XAxisLabel: "AGE",
		YAxisLabel: selector.YAxisLabel,
		Title:      "ANUAL SALARIES PER AGE",
	}

	var output bytes.Buffer
	require.NoError(t, Render(&output, request))
	assert.Contains(t, output.String(), "ANUAL SALARIES PER AGE")
}

func TestBarColorCycles(t *testing.T) {
	assert.Equal(t, palette[0], barColor(0))
	assert.Equal(t, palette[9], barColor(9))
	assert.Equal(t, palette[0], barColor(10))
	assert.Equal(t, palette[3], barColor(23))
}
