// Package sheet writes ranked tables to xlsx workbooks and reads them back.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// ErrNoSheets indicates a workbook without any sheet to write.
var ErrNoSheets = errors.New("workbook has no sheets")

const (
	// PrintAreaName is the built-in defined name Excel uses for print areas.
	PrintAreaName = "_xlnm.Print_Area"
	tableStyle    = "TableStyleMedium2"
	widthPadding  = 2
)

// Options configures the Writer.
type Options struct {
	// Chart adds a Pareto column chart to every ranked sheet.
	Chart bool
	// Logger receives per-sheet debug events.
	Logger zerolog.Logger
}

// Writer renders WorkbookData into xlsx workbooks.
type Writer struct {
	opts Options
}

// NewWriter creates a Writer.
func NewWriter(opts Options) *Writer {
	return &Writer{opts: opts}
}

// Build renders wb into a new in-memory workbook. Sheet names must already be
// sanitized and unique (see AssignNames). The caller closes the file.
func (w *Writer) Build(wb *models.WorkbookData) (*excelize.File, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrNoSheets
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("register styles: %w", err)
	}

	for i, sd := range wb.Sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sd.Name)
		} else {
			_, err = f.NewSheet(sd.Name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sd.Name, err)
		}
		if err := w.writeSheet(f, st, sd); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write sheet %q: %w", sd.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

// Save renders wb and saves it to path.
func (w *Writer) Save(wb *models.WorkbookData, path string) error {
	f, err := w.Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteTo renders wb and writes the xlsx bytes to out.
func (w *Writer) WriteTo(wb *models.WorkbookData, out io.Writer) error {
	f, err := w.Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// writeSheet emits one sheet in a single pass: header, values, derived
// formulas, styles, widths, panes, table object, print area and chart.
func (w *Writer) writeSheet(f *excelize.File, st *styles, sd models.SheetData) error {
	name := sd.Name
	r := sd.Ranked
	if r == nil || r.Table == nil {
		return nil
	}
	t := r.Table
	headers := r.Headers()
	if len(headers) == 0 {
		return nil
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		if err := f.SetCellStr(name, cellName(c+1, models.HeaderRow), h); err != nil {
			return err
		}
		widths[c] = utf8.RuneCountInString(h)
	}

	for i, row := range t.Rows {
		rowNum := models.FirstDataRow + i
		for c := range t.Columns {
			if c >= len(row) || row[c] == nil {
				continue
			}
			if err := f.SetCellValue(name, cellName(c+1, rowNum), row[c]); err != nil {
				return err
			}
			widths[c] = maxInt(widths[c], utf8.RuneCountInString(render(row[c], false)))
		}

		for d, col := range r.Derived {
			if i >= len(col.Cells) || col.Cells[i].IsBlank() {
				continue
			}
			c := len(t.Columns) + d
			cell := col.Cells[i]
			ref := cellName(c+1, rowNum)
			// The value goes first: SetCellValue clears any formula while
			// SetCellFormula keeps the cached value.
			if cell.Value != nil {
				if err := f.SetCellValue(name, ref, cell.Value); err != nil {
					return err
				}
				widths[c] = maxInt(widths[c], utf8.RuneCountInString(render(cell.Value, col.Format == models.FormatPercent)))
			}
			if cell.Formula != "" {
				if err := f.SetCellFormula(name, ref, cell.Formula); err != nil {
					return err
				}
			}
		}
	}

	lastCol := columnName(len(headers))
	lastRow := models.HeaderRow + len(t.Rows)

	if err := f.SetCellStyle(name, cellName(1, models.HeaderRow), cellName(len(headers), models.HeaderRow), st.header); err != nil {
		return err
	}
	if err := w.applyDataStyles(f, st, name, r, lastRow); err != nil {
		return err
	}

	for c, width := range widths {
		col := columnName(c + 1)
		if err := f.SetColWidth(name, col, col, float64(width+widthPadding)); err != nil {
			return err
		}
	}

	first := cellName(1, models.FirstDataRow)
	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      models.HeaderRow,
		TopLeftCell: first,
		ActivePane:  "bottomLeft",
		Selection:   []excelize.Selection{{SQRef: first, ActiveCell: first, Pane: "bottomLeft"}},
	}); err != nil {
		return err
	}

	switch {
	case len(t.Rows) == 0:
	case !tableHeaders(headers):
		w.opts.Logger.Debug().Str("sheet", name).Msg("empty or repeated header names, table object skipped")
	default:
		if err := f.AddTable(name, &excelize.Table{
			Range:     fmt.Sprintf("A%d:%s%d", models.HeaderRow, lastCol, lastRow),
			Name:      TableName(name),
			StyleName: tableStyle,
		}); err != nil {
			return fmt.Errorf("add table: %w", err)
		}
	}

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     PrintAreaName,
		RefersTo: absRef(name, "A", models.HeaderRow, lastCol, lastRow),
		Scope:    name,
	}); err != nil {
		return fmt.Errorf("set print area: %w", err)
	}

	if w.opts.Chart {
		if c := ParetoChart(name, r); c != nil {
			if err := f.AddChart(name, c.Cell, toExcelize(c)); err != nil {
				return fmt.Errorf("add chart: %w", err)
			}
		}
	}

	ev := w.opts.Logger.Debug().
		Str("sheet", name).
		Str("source", sd.Source).
		Int("rows", len(t.Rows)).
		Bool("ranked", r.Ranked())
	if r.Ranked() {
		ev = ev.Int("cutoff_row", r.Cutoff.RowIndex)
	}
	ev.Msg("sheet written")

	return nil
}

// applyDataStyles sets the two-decimal format on percent columns and fills
// the cutoff row.
func (w *Writer) applyDataStyles(f *excelize.File, st *styles, name string, r *models.RankedTable, lastRow int) error {
	if len(r.Table.Rows) == 0 {
		return nil
	}
	width := len(r.Table.Columns)

	for d, col := range r.Derived {
		if col.Format != models.FormatPercent {
			continue
		}
		c := width + d + 1
		if err := f.SetCellStyle(name, cellName(c, models.FirstDataRow), cellName(c, lastRow), st.percent); err != nil {
			return err
		}
	}

	for i := range r.Table.Rows {
		if !r.Highlighted(i) {
			continue
		}
		row := models.FirstDataRow + i
		if err := f.SetCellStyle(name, cellName(1, row), cellName(width+len(r.Derived), row), st.highlight); err != nil {
			return err
		}
		for d, col := range r.Derived {
			if col.Format != models.FormatPercent {
				continue
			}
			ref := cellName(width+d+1, row)
			if err := f.SetCellStyle(name, ref, ref, st.highlightPercent); err != nil {
				return err
			}
		}
	}
	return nil
}

// tableHeaders reports whether headers can head an Excel table object as-is.
// Excel requires every table column name to be present and unique; excelize
// would otherwise rename the visible header cells.
func tableHeaders(headers []string) bool {
	seen := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		key := strings.ToLower(h)
		if strings.TrimSpace(h) == "" {
			return false
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// render returns the text a cell displays, used for column widths.
func render(v interface{}, percent bool) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if percent {
			return strconv.FormatFloat(x, 'f', 2, 64)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
