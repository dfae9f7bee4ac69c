package sheet

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// Relationship type suffixes.
const (
	relWorksheet = "/worksheet"
	relDrawing   = "/drawing"
	relChart     = "/chart"
)

type xmlRelationships struct {
	Relationships []relationship `xml:"Relationship"`
}

// relationship is one entry of a .rels part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
	Type   string `xml:"Type,attr"`
}

type xmlWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// readPart unmarshals the package part name into v. It reports false when
// the part does not exist.
func readPart(r *zip.Reader, name string, v interface{}) (bool, error) {
	data, err := fs.ReadFile(r, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, xml.Unmarshal(data, v)
}

// relsPath returns the relationships part of a package part.
func relsPath(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// readRelationships returns the relationships of part whose type ends with
// suffix, with targets resolved to part names.
func readRelationships(r *zip.Reader, part, suffix string) ([]relationship, error) {
	var rels xmlRelationships
	if ok, err := readPart(r, relsPath(part), &rels); !ok || err != nil {
		return nil, err
	}

	var out []relationship
	for _, rel := range rels.Relationships {
		if !strings.HasSuffix(rel.Type, suffix) {
			continue
		}
		rel.Target = resolveTarget(path.Dir(part), rel.Target)
		out = append(out, rel)
	}
	return out, nil
}

// resolveTarget turns a relationship target into a package part name.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// sheetParts maps sheet names to their worksheet part names.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	const workbookPart = "xl/workbook.xml"

	var wb xmlWorkbook
	if ok, err := readPart(r, workbookPart, &wb); !ok || err != nil {
		return nil, err
	}
	rels, err := readRelationships(r, workbookPart, relWorksheet)
	if err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		targets[rel.ID] = rel.Target
	}

	parts := make(map[string]string, len(wb.Sheets))
	for _, s := range wb.Sheets {
		if t, ok := targets[s.RID]; ok {
			parts[s.Name] = t
		}
	}
	return parts, nil
}
