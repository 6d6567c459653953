package workloads

import (
	"testing"

	"github.com/mwiater/varbench/bench"
)

func TestSuites_NamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Suites() {
		if s.Name == "" || s.Description == "" {
			t.Errorf("suite missing name or description: %+v", s)
		}
		if seen[s.Name] {
			t.Errorf("duplicate suite name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Variants == nil {
			t.Errorf("suite %q has no variant builder", s.Name)
		}
	}
}

func TestFind(t *testing.T) {
	if _, ok := Find("append-growth"); !ok {
		t.Error("expected to find append-growth")
	}
	if _, ok := Find("does-not-exist"); ok {
		t.Error("did not expect to find unknown suite")
	}
}

func TestSuites_RunCleanly(t *testing.T) {
	for _, s := range Suites() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			res, err := bench.Run(s.Variants(), bench.Config{Repetitions: 2})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			for _, rep := range res.Reports {
				if rep.Failed() {
					t.Errorf("variant %q failed: %v", rep.Label, rep.Err)
					continue
				}
				if rep.Summary.Count != 2 {
					t.Errorf("variant %q: expected count 2, got %d", rep.Label, rep.Summary.Count)
				}
			}
		})
	}
}

// The variants within a suite are supposed to compute the same thing; spot
// check the result values the harness carries through.
func TestSuites_VariantsAgree(t *testing.T) {
	for _, name := range []string{"append-growth", "string-concat", "parallel-sum", "file-lines"} {
		s, ok := Find(name)
		if !ok {
			t.Fatalf("missing suite %q", name)
		}
		res, err := bench.Run(s.Variants(), bench.Config{Repetitions: 1})
		if err != nil {
			t.Fatalf("%s: Run() failed: %v", name, err)
		}
		first := res.Reports[0].LastResult
		for _, rep := range res.Reports[1:] {
			if rep.LastResult != first {
				t.Errorf("%s: variant %q produced %v, expected %v",
					name, rep.Label, rep.LastResult, first)
			}
		}
	}
}
