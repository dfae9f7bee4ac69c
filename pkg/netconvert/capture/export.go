package capture

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// Export renders the summary as network export text: for every protocol with
// endpoints, a label line followed by CSV rows under the catalog's headers.
// Headers without a counter (geo columns, for example) are left empty.
func (s *Summary) Export(catalog *models.Catalog) (string, error) {
	var buf bytes.Buffer
	if err := s.WriteExport(&buf, catalog); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteExport writes the Export text to out. Sections are separated by a
// blank line.
func (s *Summary) WriteExport(out io.Writer, catalog *models.Catalog) error {
	if catalog == nil {
		catalog = models.DefaultCatalog()
	}

	sections := 0
	for _, protocol := range Protocols {
		endpoints := s.Endpoints(protocol)
		if len(endpoints) == 0 {
			continue
		}
		schema, ok := catalog.Lookup(protocol)
		if !ok || len(schema.Headers) == 0 {
			continue
		}

		label := schema.Name + "\n"
		if sections > 0 {
			label = "\n" + label
		}
		if _, err := io.WriteString(out, label); err != nil {
			return fmt.Errorf("export %s label: %w", schema.Name, err)
		}
		sections++

		w := csv.NewWriter(out)
		if err := w.Write(schema.Headers); err != nil {
			return fmt.Errorf("export %s header: %w", schema.Name, err)
		}
		for _, e := range endpoints {
			row := make([]string, len(schema.Headers))
			for i, h := range schema.Headers {
				row[i] = e.field(models.NormalizeName(h))
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("export %s row: %w", schema.Name, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("export %s: %w", schema.Name, err)
		}
	}

	return nil
}

// field returns the value of the column with the given normalized name.
func (e *Endpoint) field(name string) string {
	switch name {
	case "address":
		return e.Address
	case models.PortColumn:
		if e.HasPort {
			return strconv.FormatUint(uint64(e.Port), 10)
		}
		return ""
	case "packets":
		return strconv.FormatUint(e.Packets(), 10)
	case "bytes":
		return strconv.FormatUint(e.Bytes(), 10)
	case "txpackets":
		return strconv.FormatUint(e.TxPackets, 10)
	case "txbytes":
		return strconv.FormatUint(e.TxBytes, 10)
	case "rxpackets":
		return strconv.FormatUint(e.RxPackets, 10)
	case "rxbytes":
		return strconv.FormatUint(e.RxBytes, 10)
	default:
		return ""
	}
}
