package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"hermannm.dev/salaries/selector"
	"hermannm.dev/wrap"
)

const (
	Width  = "1000px"
	Height = "600px"
)

// Each key's bar is colored by the key's index in the report, cycling through this palette.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// emptyBar is how echarts marks a missing value, leaving no bar at that position.
const emptyBar = "-"

// Render writes an HTML page with a bar chart of the requested report, one bar per entry in the
// report's order. Every group key is its own series with its own color, so the legend lists the
// keys. The series are stacked, which keeps each bar centered over its key.
func Render(output io.Writer, request selector.RenderRequest) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: request.Title,
			Width:     Width,
			Height:    Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: request.Title}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: request.XAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: request.YAxisLabel}),
	)

	labels := request.Report.Labels()
	bar.SetXAxis(labels)

	for i, entry := range request.Report.Entries {
		bar.AddSeries(
			labels[i],
			seriesData(len(labels), i, entry.Total.InexactFloat64()),
			charts.WithBarChartOpts(opts.BarChart{Stack: request.YAxisLabel}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor(i)}),
		)
	}

	if err := bar.Render(output); err != nil {
		return wrap.Errorf(err, "failed to render chart '%s'", request.Title)
	}
	return nil
}

// seriesData returns bar values for a series that only has a bar at the given index.
func seriesData(length int, index int, value float64) []opts.BarData {
	data := make([]opts.BarData, length)
	for i := range data {
		if i == index {
			data[i] = opts.BarData{Value: value}
		} else {
			data[i] = opts.BarData{Value: emptyBar}
		}
	}
	return data
}

func barColor(index int) string {
	return palette[index%len(palette)]
}
