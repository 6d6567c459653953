// Package suite loads JSON suite files whose variants run external
// commands. A suite file names the candidate commands, how many times to
// run each, and a per-execution timeout:
//
//	{
//	  "repetitions": 5,
//	  "percentile": 0.95,
//	  "timeout": "30s",
//	  "variants": [
//	    {"label": "gzip", "command": "gzip", "args": ["-kf", "data.bin"]}
//	  ]
//	}
package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mwiater/varbench/bench"
)

const (
	defaultRepetitions = 5
	defaultTimeout     = 60 * time.Second
)

// VariantSpec describes one command-line variant.
type VariantSpec struct {
	Label   string   `json:"label"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
	// Dir is the working directory for the command; empty means inherit.
	Dir string `json:"dir,omitempty"`
}

// File is a parsed suite file.
type File struct {
	Repetitions int     `json:"repetitions"`
	Percentile  float64 `json:"percentile,omitempty"`
	// Timeout bounds each command execution, as a Go duration string.
	Timeout  string        `json:"timeout,omitempty"`
	Variants []VariantSpec `json:"variants"`

	timeout time.Duration
}

// Load reads and parses a suite file, applying defaults and validating it.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read suite file: %w", err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("could not parse suite JSON: %w", err)
	}
	if err := f.finish(); err != nil {
		return nil, err
	}
	return &f, nil
}

// finish applies defaults and validates the parsed file.
func (f *File) finish() error {
	if len(f.Variants) == 0 {
		return errors.New("suite must contain at least one variant")
	}
	for i, v := range f.Variants {
		if v.Label == "" {
			return fmt.Errorf("variant %d has no label", i)
		}
		if v.Command == "" {
			return fmt.Errorf("variant %q has no command", v.Label)
		}
	}
	if f.Repetitions <= 0 {
		f.Repetitions = defaultRepetitions
	}
	f.timeout = defaultTimeout
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("bad timeout %q: %w", f.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %q", f.Timeout)
		}
		f.timeout = d
	}
	return nil
}

// BenchVariants builds the runnable variant set for this file.
func (f *File) BenchVariants() []bench.Variant {
	out := make([]bench.Variant, 0, len(f.Variants))
	for _, spec := range f.Variants {
		out = append(out, commandVariant(spec, f.timeout))
	}
	return out
}

// RunConfig maps the file's settings to a bench.Config. A non-nil observer
// receives progress events during the run.
func (f *File) RunConfig(observer bench.Observer) bench.Config {
	return bench.Config{
		Repetitions: f.Repetitions,
		Percentile:  f.Percentile,
		Observer:    observer,
	}
}
