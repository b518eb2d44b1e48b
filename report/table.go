package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cunkin375/rootfind/trace"
)

// TableSink writes a trace as an aligned text table, followed by a
// one-line outcome summary and any warnings the run raised.
type TableSink struct {
	w io.Writer
}

// NewTableSink wraps the destination writer. The sink does not close it.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

// Emit renders the result's records and outcome.
func (s *TableSink) Emit(res *trace.Result) error {
	if res == nil {
		return fmt.Errorf("report: nil result")
	}

	tw := tabwriter.NewWriter(s.w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header(res.Method), "\t")); err != nil {
		return err
	}
	for _, rec := range res.Records {
		if _, err := fmt.Fprintln(tw, strings.Join(row(res.Method, rec), "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, warn := range res.Warnings {
		if _, err := fmt.Fprintf(s.w, "warning: %s\n", warn); err != nil {
			return err
		}
	}

	return s.summary(res)
}

func (s *TableSink) summary(res *trace.Result) error {
	var err error
	switch res.Status {
	case trace.StatusConverged:
		_, err = fmt.Fprintf(s.w, "converged to root %v after %d records\n", res.Root, len(res.Records))
	case trace.StatusMaxIterations:
		_, err = fmt.Fprintf(s.w, "maximum iterations reached; best estimate %v\n", res.Root)
	case trace.StatusFailed:
		_, err = fmt.Fprintf(s.w, "failed (%s); last estimate %v\n", res.Failure, res.Root)
	}

	return err
}
