package parser

import "github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"

// Prune removes protocol-specific columns from t.
// IPv4/IPv6 tables lose the catalog's geo/ASN columns (exact names);
// TCP/UDP tables lose any column normalizing to "port". Pruning an already
// pruned table changes nothing.
func Prune(t *models.Table, catalog *models.Catalog) {
	switch {
	case catalog.DropsGeo(t.Name):
		geo := make(map[string]struct{})
		for _, name := range catalog.GeoColumns() {
			geo[name] = struct{}{}
		}
		t.DropColumns(func(c models.Column) bool {
			_, ok := geo[c.Name]
			return ok
		})
	case catalog.DropsPort(t.Name):
		t.DropColumns(func(c models.Column) bool {
			return models.NormalizeName(c.Name) == models.PortColumn
		})
	}
}
