// Package models defines data structures for network export conversion.
package models

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultSheetName labels tables whose protocol could not be identified.
const DefaultSheetName = "Sheet"

// PortColumn is the normalized name of the port column.
const PortColumn = "port"

// Schema describes the expected columns of one protocol export.
type Schema struct {
	// Name is the protocol key (e.g., IPv4).
	Name string `json:"name" yaml:"name"`
	// Headers is the ordered list of expected column names.
	Headers []string `json:"headers" yaml:"headers"`
}

// CatalogConfig is the plain data used to build a Catalog.
type CatalogConfig struct {
	// Schemas lists the known protocols in matching order.
	Schemas []Schema `yaml:"schemas"`
	// NumericColumns lists normalized column names coerced to numbers.
	NumericColumns []string `yaml:"numeric_columns"`
	// GeoColumns lists exact column names dropped for GeoProtocols.
	GeoColumns []string `yaml:"geo_columns"`
	// GeoProtocols lists protocols whose geo/ASN columns are dropped.
	GeoProtocols []string `yaml:"geo_protocols"`
	// PortProtocols lists protocols whose port column is dropped.
	PortProtocols []string `yaml:"port_protocols"`
}

// Catalog is immutable protocol configuration shared by the extractor and
// the ranking augmenter.
type Catalog struct {
	schemas       []Schema
	numeric       map[string]struct{}
	geoColumns    []string
	geoProtocols  []string
	portProtocols []string
}

var defaultHeaders = []string{
	"Address", "Packets", "Bytes", "Tx Packets", "Tx Bytes", "Rx Packets", "Rx Bytes",
}

var defaultPortHeaders = []string{
	"Address", "Port", "Packets", "Bytes", "Tx Packets", "Tx Bytes", "Rx Packets", "Rx Bytes",
}

// DefaultCatalogConfig returns the built-in configuration for the five
// supported protocols.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Schemas: []Schema{
			{Name: "Ethernet", Headers: append([]string(nil), defaultPortHeaders...)},
			{Name: "IPv4", Headers: append([]string(nil), defaultHeaders...)},
			{Name: "IPv6", Headers: append([]string(nil), defaultHeaders...)},
			{Name: "TCP", Headers: append([]string(nil), defaultPortHeaders...)},
			{Name: "UDP", Headers: append([]string(nil), defaultPortHeaders...)},
		},
		NumericColumns: []string{
			"packets", "bytes", "txpackets", "txbytes", "rxpackets", "rxbytes",
			"port", "latitude", "longitude", "asnumber",
		},
		GeoColumns:    []string{"Country", "City", "Latitude", "Longitude", "AS Number", "AS Organization"},
		GeoProtocols:  []string{"IPv4", "IPv6"},
		PortProtocols: []string{"TCP", "UDP"},
	}
}

// DefaultCatalog returns a Catalog built from DefaultCatalogConfig.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultCatalogConfig())
}

// NewCatalog builds a Catalog, copying every slice of cfg.
func NewCatalog(cfg CatalogConfig) *Catalog {
	c := &Catalog{
		numeric:       make(map[string]struct{}, len(cfg.NumericColumns)),
		geoColumns:    append([]string(nil), cfg.GeoColumns...),
		geoProtocols:  append([]string(nil), cfg.GeoProtocols...),
		portProtocols: append([]string(nil), cfg.PortProtocols...),
	}
	for _, s := range cfg.Schemas {
		c.schemas = append(c.schemas, Schema{Name: s.Name, Headers: append([]string(nil), s.Headers...)})
	}
	for _, name := range cfg.NumericColumns {
		c.numeric[NormalizeName(name)] = struct{}{}
	}
	return c
}

// Config returns a copy of the configuration the catalog was built from.
func (c *Catalog) Config() CatalogConfig {
	cfg := CatalogConfig{
		Schemas:       c.Schemas(),
		GeoColumns:    append([]string(nil), c.geoColumns...),
		GeoProtocols:  append([]string(nil), c.geoProtocols...),
		PortProtocols: append([]string(nil), c.portProtocols...),
	}
	for name := range c.numeric {
		cfg.NumericColumns = append(cfg.NumericColumns, name)
	}
	sort.Strings(cfg.NumericColumns)
	return cfg
}

// Schemas returns a copy of the known schemas in matching order.
func (c *Catalog) Schemas() []Schema {
	out := make([]Schema, len(c.schemas))
	for i, s := range c.schemas {
		out[i] = Schema{Name: s.Name, Headers: append([]string(nil), s.Headers...)}
	}
	return out
}

// ProtocolNames returns the protocol keys in matching order.
func (c *Catalog) ProtocolNames() []string {
	names := make([]string, len(c.schemas))
	for i, s := range c.schemas {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a schema by protocol name, ignoring case.
func (c *Catalog) Lookup(name string) (Schema, bool) {
	for _, s := range c.schemas {
		if strings.EqualFold(s.Name, name) {
			return Schema{Name: s.Name, Headers: append([]string(nil), s.Headers...)}, true
		}
	}
	return Schema{}, false
}

// IsNumericColumn reports whether a column name denotes a numeric column.
func (c *Catalog) IsNumericColumn(name string) bool {
	_, ok := c.numeric[NormalizeName(name)]
	return ok
}

// GeoColumns returns the exact names of the geo/ASN columns.
func (c *Catalog) GeoColumns() []string {
	return append([]string(nil), c.geoColumns...)
}

// DropsGeo reports whether geo/ASN columns are removed for protocol.
func (c *Catalog) DropsGeo(protocol string) bool {
	return containsFold(c.geoProtocols, protocol)
}

// DropsPort reports whether the port column is removed for protocol.
func (c *Catalog) DropsPort(protocol string) bool {
	return containsFold(c.portProtocols, protocol)
}

// NormalizeName lowercases s and strips every non-alphanumeric rune.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
