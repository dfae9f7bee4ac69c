package parser

import (
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// Extractor converts raw export text into normalized tables.
type Extractor struct {
	catalog    *models.Catalog
	strategies []Strategy
}

// NewExtractor creates an Extractor for catalog.
// A nil catalog selects models.DefaultCatalog.
func NewExtractor(catalog *models.Catalog) *Extractor {
	if catalog == nil {
		catalog = models.DefaultCatalog()
	}
	e := &Extractor{catalog: catalog}
	e.strategies = []Strategy{
		{Name: "delimited", Parse: ParseDelimited},
		{Name: "aligned", Parse: e.parseAligned},
		{Name: "single-column", Parse: ParseSingleColumn},
	}
	return e
}

// Strategies returns the parse strategies in the order they are tried.
func (e *Extractor) Strategies() []Strategy {
	return append([]Strategy(nil), e.strategies...)
}

// Parse runs the strategy chain over lines and returns the first success
// together with the name of the strategy that produced it.
func (e *Extractor) Parse(lines []string) (*models.RawTable, string) {
	lines = nonBlank(lines)
	for _, s := range e.strategies {
		if table, ok := s.Parse(lines); ok {
			return table, s.Name
		}
	}
	return &models.RawTable{}, ""
}

// parseAligned strips a label line left in the body before splitting.
func (e *Extractor) parseAligned(lines []string) (*models.RawTable, bool) {
	lines, _ = StripLabel(lines, e.catalog)
	return ParseAligned(lines)
}

// Extract converts one export into a normalized table.
// Input without any non-blank line yields an empty table.
func (e *Extractor) Extract(text, source string) *models.Table {
	body, label := StripLabel(SplitLines(text), e.catalog)
	return e.extract(body, Identify(source, label, e.catalog))
}

// ExtractAll converts an export that may hold several labelled sections.
// Each section becomes its own table named by its label, in file order.
// Text with fewer than two labels is handled like Extract.
func (e *Extractor) ExtractAll(text, source string) []*models.Table {
	sections := e.splitSections(SplitLines(text))
	if len(sections) < 2 {
		return []*models.Table{e.Extract(text, source)}
	}

	tables := make([]*models.Table, 0, len(sections))
	for _, s := range sections {
		protocol := s.label
		if protocol == "" {
			protocol = Identify(source, "", e.catalog)
		}
		tables = append(tables, e.extract(s.lines, protocol))
	}
	return tables
}

func (e *Extractor) extract(body []string, protocol string) *models.Table {
	body = nonBlank(body)
	if len(body) == 0 {
		return &models.Table{Name: protocol}
	}

	raw, _ := e.Parse(body)
	t := Coerce(raw, e.catalog)
	t.Name = protocol
	Prune(t, e.catalog)
	return t
}

type section struct {
	label string
	lines []string
}

// splitSections cuts lines at every label line. Content before the first
// label forms an unlabelled section. It returns nil when fewer than two
// labels are present.
func (e *Extractor) splitSections(lines []string) []section {
	var (
		sections []section
		labels   int
		current  = section{}
	)
	for _, line := range lines {
		if name, ok := Label(line, e.catalog); ok {
			if current.label != "" || len(nonBlank(current.lines)) > 0 {
				sections = append(sections, current)
			}
			current = section{label: name}
			labels++
			continue
		}
		current.lines = append(current.lines, line)
	}
	if current.label != "" || len(nonBlank(current.lines)) > 0 {
		sections = append(sections, current)
	}
	if labels < 2 {
		return nil
	}
	return sections
}
