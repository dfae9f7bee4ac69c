// Package netconvert converts network capture exports into ranked xlsx
// workbooks.
package netconvert

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

// Options configures conversion behavior.
type Options struct {
	// Rank specifies whether tables with a volume column are ranked.
	// If nil, defaults to true.
	Rank *bool
	// Chart adds a Pareto chart to every ranked sheet when saving xlsx.
	Chart bool
	// Workers bounds how many input files are read at once.
	// Zero or less selects GOMAXPROCS.
	Workers int
	// Catalog holds the protocol schemas. If nil, models.DefaultCatalog is used.
	Catalog *models.Catalog
	// Logger receives per-file and per-table events.
	Logger zerolog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
	}
}

// ShouldRank returns whether tables are ranked.
func (o Options) ShouldRank() bool {
	if o.Rank != nil {
		return *o.Rank
	}
	return true
}

// WorkerCount returns the effective number of parallel file workers.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
