package models

// ChartSeries represents one data series of a chart.
type ChartSeries struct {
	// Name is the range reference for the series name.
	Name string `json:"name"`
	// Categories is the range reference for category labels.
	Categories string `json:"categories"`
	// Values is the range reference for series values.
	Values string `json:"values"`
}

// Chart describes a chart placed on a sheet.
type Chart struct {
	// Cell is the top-left anchor cell (e.g., "L2").
	Cell string `json:"cell"`
	// Type is the plot type (e.g., "Column").
	Type string `json:"type,omitempty"`
	// Title is the chart title.
	Title string `json:"title"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
