package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cunkin375/rootfind/trace"
)

// Sink consumes a finished run's trace. Implementations make no
// assumption beyond record order and field presence.
type Sink interface {
	Emit(res *trace.Result) error
}

// CSVSink writes a trace as CSV: one header row, then one row per
// record, columns per the producing method.
type CSVSink struct {
	w io.Writer
}

// NewCSVSink wraps the destination writer. The sink does not close it.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: w}
}

// Emit writes the result's records, whatever its outcome; a failed run
// emits the partial trace accumulated before termination.
func (s *CSVSink) Emit(res *trace.Result) error {
	if res == nil {
		return fmt.Errorf("report: nil result")
	}

	w := csv.NewWriter(s.w)
	if err := w.Write(header(res.Method)); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, rec := range res.Records {
		if err := w.Write(row(res.Method, rec)); err != nil {
			return fmt.Errorf("report: write record %d: %w", rec.Index, err)
		}
	}
	w.Flush()

	return w.Error()
}
