package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// LoadCatalog reads a YAML protocol catalog and merges it onto the default
// catalog. Schemas replace defaults of the same name (ignoring case) or are
// appended; column and protocol lists are unioned. An empty path returns the
// default catalog.
func LoadCatalog(path string) (*models.Catalog, error) {
	if path == "" {
		return models.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var extra models.CatalogConfig
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	for i, s := range extra.Schemas {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("schema %d has no name", i+1)
		}
		if len(s.Headers) == 0 {
			return nil, fmt.Errorf("schema %q has no headers", s.Name)
		}
	}

	return models.NewCatalog(MergeCatalog(models.DefaultCatalogConfig(), extra)), nil
}

// MergeCatalog overlays extra onto base.
func MergeCatalog(base, extra models.CatalogConfig) models.CatalogConfig {
	out := models.CatalogConfig{
		Schemas:        append([]models.Schema(nil), base.Schemas...),
		NumericColumns: union(base.NumericColumns, extra.NumericColumns),
		GeoColumns:     union(base.GeoColumns, extra.GeoColumns),
		GeoProtocols:   union(base.GeoProtocols, extra.GeoProtocols),
		PortProtocols:  union(base.PortProtocols, extra.PortProtocols),
	}

	for _, s := range extra.Schemas {
		replaced := false
		for i := range out.Schemas {
			if strings.EqualFold(out.Schemas[i].Name, s.Name) {
				out.Schemas[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			out.Schemas = append(out.Schemas, s)
		}
	}

	return out
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, s := range b {
		found := false
		for _, existing := range out {
			if strings.EqualFold(existing, s) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}
