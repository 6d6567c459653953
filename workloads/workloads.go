// Package workloads ships the built-in demo suites: small, self-contained
// comparisons of alternative implementations of the same task, wired into
// the bench harness. Each suite builds fresh input state per call, so
// repeated runs are independent.
package workloads

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/varbench/bench"
)

// Suite is one named group of comparable variants.
type Suite struct {
	Name        string
	Description string
	// Variants builds a fresh variant set; called once per run.
	Variants func() []bench.Variant
}

// Suites returns all built-in suites, in display order.
func Suites() []Suite {
	return []Suite{
		{
			Name:        "append-growth",
			Description: "Building a large slice: naive append vs preallocation vs index assignment",
			Variants:    appendGrowthVariants,
		},
		{
			Name:        "string-concat",
			Description: "Building a large string: += vs strings.Builder vs strings.Join",
			Variants:    stringConcatVariants,
		},
		{
			Name:        "parallel-sum",
			Description: "Summing a large slice: sequential loop vs chunked worker pool",
			Variants:    parallelSumVariants,
		},
		{
			Name:        "file-lines",
			Description: "Counting lines in a file: streaming scanner vs whole-file read",
			Variants:    fileLinesVariants,
		},
	}
}

// Find returns the suite with the given name.
func Find(name string) (Suite, bool) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

const (
	sliceSize   = 100_000
	concatParts = 10_000
	sumSize     = 1_000_000
	fileLines   = 50_000
)

func appendGrowthVariants() []bench.Variant {
	return []bench.Variant{
		{
			Label: "append-from-nil",
			Compute: func() (any, error) {
				var out []float64
				for i := 0; i < sliceSize; i++ {
					out = append(out, float64(i)*0.5)
				}
				return len(out), nil
			},
		},
		{
			Label: "append-prealloc",
			Compute: func() (any, error) {
				out := make([]float64, 0, sliceSize)
				for i := 0; i < sliceSize; i++ {
					out = append(out, float64(i)*0.5)
				}
				return len(out), nil
			},
		},
		{
			Label: "index-assign",
			Compute: func() (any, error) {
				out := make([]float64, sliceSize)
				for i := range out {
					out[i] = float64(i) * 0.5
				}
				return len(out), nil
			},
		},
	}
}

func stringConcatVariants() []bench.Variant {
	parts := make([]string, concatParts)
	for i := range parts {
		parts[i] = fmt.Sprintf("part-%d", i)
	}

	return []bench.Variant{
		{
			Label: "plus-equals",
			Compute: func() (any, error) {
				var s string
				for _, p := range parts {
					s += p
				}
				return len(s), nil
			},
		},
		{
			Label: "builder",
			Compute: func() (any, error) {
				var b strings.Builder
				for _, p := range parts {
					b.WriteString(p)
				}
				return b.Len(), nil
			},
		},
		{
			Label: "join",
			Compute: func() (any, error) {
				return len(strings.Join(parts, "")), nil
			},
		},
	}
}

func parallelSumVariants() []bench.Variant {
	data := make([]float64, sumSize)
	for i := range data {
		data[i] = float64(i % 1000)
	}

	pool := newSumPool(4)
	return []bench.Variant{
		{
			Label: "sequential",
			Compute: func() (any, error) {
				var sum float64
				for _, v := range data {
					sum += v
				}
				return sum, nil
			},
		},
		{
			Label:   "worker-pool",
			Setup:   func() error { pool.start(); return nil },
			Cleanup: pool.stop,
			Compute: func() (any, error) {
				return pool.sum(data), nil
			},
		},
	}
}

func fileLinesVariants() []bench.Variant {
	scannerFile := &tempLineFile{}
	readAllFile := &tempLineFile{}

	return []bench.Variant{
		{
			Label:   "scanner",
			Setup:   scannerFile.create,
			Cleanup: scannerFile.remove,
			Compute: func() (any, error) {
				f, err := os.Open(scannerFile.path)
				if err != nil {
					return nil, err
				}
				defer f.Close()
				count := 0
				sc := bufio.NewScanner(f)
				for sc.Scan() {
					count++
				}
				return count, sc.Err()
			},
		},
		{
			Label:   "read-all",
			Setup:   readAllFile.create,
			Cleanup: readAllFile.remove,
			Compute: func() (any, error) {
				b, err := os.ReadFile(readAllFile.path)
				if err != nil {
					return nil, err
				}
				return bytes.Count(b, []byte{'\n'}), nil
			},
		},
	}
}

// tempLineFile owns one generated input file for the lifetime of a variant.
type tempLineFile struct {
	path string
}

func (t *tempLineFile) create() error {
	f, err := os.CreateTemp("", "varbench-lines-*.txt")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i := 0; i < fileLines; i++ {
		fmt.Fprintf(w, "line %d: some sample text to pad the row out\n", i)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	t.path = f.Name()
	return f.Close()
}

func (t *tempLineFile) remove() {
	if t.path != "" {
		os.Remove(t.path)
	}
}
