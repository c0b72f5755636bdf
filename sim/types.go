// Package sim options: execution configuration shared by all metrics.
package sim

import "runtime"

// DefaultWorkers is the documented default for Options.Workers:
// strictly sequential execution.
const DefaultWorkers = 1

// Options configures a similarity computation.
//
// Fields:
//   - Workers — number of goroutines for the accumulation and combination
//     passes. 1 runs sequentially; 0 resolves to runtime.NumCPU();
//     negative values are rejected with ErrBadWorkers. Each worker owns a
//     private accumulator set, so memory grows linearly with Workers.
//
// Example:
//
//	opts := sim.DefaultOptions()
//	opts.Workers = 4
//	m, err := sim.Pearson(nX, yr, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
}

// resolveWorkers maps an optional Options into an effective worker count.
// nil opts means defaults.
func resolveWorkers(opts *Options) (int, error) {
	w := DefaultWorkers
	if opts != nil {
		w = opts.Workers
	}
	if w < 0 {
		return 0, ErrBadWorkers
	}
	if w == 0 {
		w = runtime.NumCPU()
	}

	return w, nil
}
