// report/json.go
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/mwiater/varbench/bench"
)

// jsonResult mirrors bench.Result with failure causes flattened to
// strings so the artifact round-trips through encoding/json.
type jsonResult struct {
	Repetitions int           `json:"repetitions"`
	Percentile  float64       `json:"percentile"`
	GeneratedAt time.Time     `json:"generated_at"`
	Reports     []jsonVariant `json:"reports"`
}

type jsonVariant struct {
	Label        string              `json:"label"`
	Measurements []bench.Measurement `json:"measurements,omitempty"`
	Summary      *bench.Summary      `json:"summary,omitempty"`
	Failure      string              `json:"failure,omitempty"`
}

// WriteJSON writes the full run artifact, indented, to w.
func WriteJSON(w io.Writer, res bench.Result) error {
	out := jsonResult{
		Repetitions: res.Config.Repetitions,
		Percentile:  res.Config.Percentile,
		GeneratedAt: res.GeneratedAt,
		Reports:     make([]jsonVariant, 0, len(res.Reports)),
	}
	for _, rep := range res.Reports {
		jv := jsonVariant{
			Label:        rep.Label,
			Measurements: rep.Measurements,
			Summary:      rep.Summary,
		}
		if rep.Failed() {
			jv.Failure = causeOf(rep.Err).Error()
		}
		out.Reports = append(out.Reports, jv)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
