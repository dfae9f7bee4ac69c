package sheet

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// chartTypes maps plot elements to chart type names.
var chartTypes = map[string]string{
	"barChart":      ChartTypeColumn,
	"bar3DChart":    "3DColumn",
	"lineChart":     "Line",
	"areaChart":     "Area",
	"pieChart":      "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
}

type xmlDrawing struct {
	TwoCell []xmlAnchor `xml:"twoCellAnchor"`
	OneCell []xmlAnchor `xml:"oneCellAnchor"`
}

type xmlAnchor struct {
	From struct {
		Col int `xml:"col"`
		Row int `xml:"row"`
	} `xml:"from"`
	Chart struct {
		RID string `xml:"id,attr"`
	} `xml:"graphicFrame>graphic>graphicData>chart"`
}

type xmlChartSpace struct {
	Chart struct {
		Title    []string `xml:"title>tx>rich>p>r>t"`
		PlotArea struct {
			Plots []xmlPlot `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

type xmlPlot struct {
	XMLName xml.Name
	Series  []xmlSeries `xml:"ser"`
}

type xmlSeries struct {
	Name xmlRef `xml:"tx"`
	Cat  xmlRef `xml:"cat"`
	Val  xmlRef `xml:"val"`
}

// xmlRef holds a series range, stored as a string or number reference.
type xmlRef struct {
	Str string `xml:"strRef>f"`
	Num string `xml:"numRef>f"`
}

func (r xmlRef) formula() string {
	if r.Str != "" {
		return strings.TrimSpace(r.Str)
	}
	return strings.TrimSpace(r.Num)
}

// readCharts returns the charts of the workbook at path keyed by sheet name.
func readCharts(path string) (map[string][]models.Chart, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	r := &zr.Reader

	parts, err := sheetParts(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for sheetName, sheetPart := range parts {
		drawings, err := readRelationships(r, sheetPart, relDrawing)
		if err != nil {
			return nil, err
		}
		for _, d := range drawings {
			charts, err := readDrawingCharts(r, d.Target)
			if err != nil {
				return nil, err
			}
			result[sheetName] = append(result[sheetName], charts...)
		}
	}

	return result, nil
}

// readDrawingCharts parses every chart anchored in a drawing part, in anchor
// order.
func readDrawingCharts(r *zip.Reader, drawingPart string) ([]models.Chart, error) {
	var d xmlDrawing
	if ok, err := readPart(r, drawingPart, &d); !ok || err != nil {
		return nil, err
	}

	rels, err := readRelationships(r, drawingPart, relChart)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		targets[rel.ID] = rel.Target
	}

	var charts []models.Chart
	for _, a := range append(d.TwoCell, d.OneCell...) {
		part, ok := targets[a.Chart.RID]
		if !ok {
			continue
		}
		var cs xmlChartSpace
		if ok, err := readPart(r, part, &cs); !ok || err != nil {
			if err != nil {
				return nil, err
			}
			continue
		}
		c := cs.chart()
		c.Cell = cellName(a.From.Col+1, a.From.Row+1)
		charts = append(charts, c)
	}
	return charts, nil
}

// chart converts the first recognized plot of a chart part.
func (cs *xmlChartSpace) chart() models.Chart {
	c := models.Chart{
		Type:  "unknown",
		Title: strings.TrimSpace(strings.Join(cs.Chart.Title, "")),
	}
	for _, p := range cs.Chart.PlotArea.Plots {
		t, ok := chartTypes[p.XMLName.Local]
		if !ok {
			continue
		}
		c.Type = t
		for _, s := range p.Series {
			c.Series = append(c.Series, models.ChartSeries{
				Name:       s.Name.formula(),
				Categories: s.Cat.formula(),
				Values:     s.Val.formula(),
			})
		}
		break
	}
	return c
}
