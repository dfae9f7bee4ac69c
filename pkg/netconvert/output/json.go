// Package output provides JSON serialization for conversion results.
package output

import (
	"encoding/json"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// ToJSON serializes converted workbook data to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// InfoToJSON serializes a workbook read back from disk.
func InfoToJSON(info *models.WorkbookInfo, pretty bool) ([]byte, error) {
	return marshal(info, pretty)
}

// SheetInfoToJSON serializes a single sheet read back from disk.
func SheetInfoToJSON(sheet *models.SheetInfo, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// PrintAreaViewToJSON serializes one print area slice.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}
