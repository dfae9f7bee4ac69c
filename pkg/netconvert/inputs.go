package netconvert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/capture"
)

// TextExtensions lists the text export extensions picked up from directories.
var TextExtensions = []string{".txt", ".csv", ".tsv"}

// CollectInputs expands paths into the list of files to convert. Files are
// kept as given; directories contribute their text exports and capture files
// (not recursively) in name order.
func CollectInputs(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
			}
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if isInput(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	return files, nil
}

func isInput(name string) bool {
	if capture.IsCapture(name) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range TextExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
