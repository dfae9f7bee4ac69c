package netconvert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/capture"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/output"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/parser"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/ranking"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/sheet"
)

// Output formats accepted by Save.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Converter runs the extract, rank and write pipeline.
type Converter struct {
	opts      Options
	extractor *parser.Extractor
	log       zerolog.Logger
}

// NewConverter creates a Converter.
func NewConverter(opts Options) *Converter {
	if opts.Catalog == nil {
		opts.Catalog = models.DefaultCatalog()
	}
	return &Converter{
		opts:      opts,
		extractor: parser.NewExtractor(opts.Catalog),
		log:       opts.Logger,
	}
}

// Convert reads every path and builds one workbook from the results.
func Convert(ctx context.Context, paths []string, opts Options) (*models.WorkbookData, error) {
	return NewConverter(opts).ConvertFiles(ctx, paths)
}

// ConvertText converts one export. Empty tables are skipped; the remaining
// tables are ranked unless ranking is disabled. Sheet names are not assigned.
func (c *Converter) ConvertText(text, source string) []models.SheetData {
	return c.sheets(c.extractor.ExtractAll(text, source), source)
}

// ConvertFile reads one input file. Capture files are summarized first and
// named by their section labels; text files are decoded and named by their
// base name, then by their label.
func (c *Converter) ConvertFile(ctx context.Context, path string) ([]models.SheetData, error) {
	source := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConversionError(source, StageRead, fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewConversionError(source, StageRead, err)
	}

	if capture.IsCapture(path) {
		summary, err := capture.SummarizeFile(ctx, path, c.log)
		if err != nil {
			return nil, NewConversionError(source, StageCapture, err)
		}
		text, err := summary.Export(c.opts.Catalog)
		if err != nil {
			return nil, NewConversionError(source, StageCapture, err)
		}
		return c.sheets(c.extractor.ExtractAll(text, ""), source), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConversionError(source, StageRead, err)
	}
	return c.ConvertText(parser.Decode(data), source), nil
}

// ConvertFiles converts paths in parallel, bounded by the worker count, and
// returns the sheets in input order with unique sheet names. The first read
// failure cancels the remaining work.
func (c *Converter) ConvertFiles(ctx context.Context, paths []string) (*models.WorkbookData, error) {
	results := make([][]models.SheetData, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.WorkerCount())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sheets, err := c.ConvertFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = sheets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	wb := &models.WorkbookData{}
	for _, sheets := range results {
		wb.Sheets = append(wb.Sheets, sheets...)
	}
	if len(wb.Sheets) == 0 {
		return nil, ErrNothingToConvert
	}
	sheet.AssignNames(wb.Sheets)

	return wb, nil
}

// Save writes wb to path in the given format and sets wb.BookName to the
// file name.
func (c *Converter) Save(wb *models.WorkbookData, path, format string) error {
	format = strings.ToLower(format)
	if format != FormatXLSX && format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	wb.BookName = filepath.Base(path)

	var err error
	switch format {
	case FormatXLSX:
		w := sheet.NewWriter(sheet.Options{Chart: c.opts.Chart, Logger: c.log})
		err = w.Save(wb, path)
	case FormatJSON:
		var data []byte
		if data, err = output.ToJSON(wb, true); err == nil {
			err = os.WriteFile(path, data, 0644)
		}
	}
	if err != nil {
		return NewConversionError(wb.BookName, StageWrite, err)
	}

	c.log.Info().Str("path", path).Str("format", format).Int("sheets", len(wb.Sheets)).Msg("workbook saved")
	return nil
}

func (c *Converter) sheets(tables []*models.Table, source string) []models.SheetData {
	out := make([]models.SheetData, 0, len(tables))
	for _, t := range tables {
		if t.IsEmpty() {
			c.log.Debug().Str("source", source).Str("protocol", t.Name).Msg("skipping empty table")
			continue
		}

		r := models.Unranked(t)
		if c.opts.ShouldRank() {
			r = ranking.Augment(t)
		}

		ev := c.log.Info().
			Str("source", source).
			Str("protocol", t.Name).
			Int("rows", len(r.Table.Rows)).
			Bool("ranked", r.Ranked())
		if r.Ranked() {
			ev = ev.Int("cutoff_row", r.Cutoff.RowIndex)
		}
		ev.Msg("table converted")

		out = append(out, models.SheetData{Source: source, Ranked: r})
	}
	return out
}
