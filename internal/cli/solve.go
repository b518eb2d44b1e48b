package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cunkin375/rootfind/expr"
	"github.com/cunkin375/rootfind/report"
	"github.com/cunkin375/rootfind/roots"
	"github.com/cunkin375/rootfind/trace"
)

// solveOptions holds the flags common to every method command.
type solveOptions struct {
	*RootOptions
	Fn      string
	Dfn     string
	Tol     float64
	MaxIter int
	Out     string
}

// addCommonFlags wires the flags every method command shares.
func addCommonFlags(cmd *cobra.Command, opts *solveOptions) {
	cmd.Flags().StringVar(&opts.Fn, "fn", "", "function f(x), e.g. \"x**3 - 3*x**2 + 2*x - 0.1\"")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 1e-6, "convergence tolerance")
	cmd.Flags().IntVar(&opts.MaxIter, "max-iter", 50, "iteration cap")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the trace to this file (default stdout)")
	_ = cmd.MarkFlagRequired("fn")
}

func (o *solveOptions) engineOptions() roots.Options {
	return roots.Options{Tolerance: o.Tol, MaxIterations: o.MaxIter}
}

// NewBisectCommand creates the bisection command.
func NewBisectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{RootOptions: rootOpts}
	var a, b float64

	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Bisection method over a bracket [a,b]",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.Compile(opts.Fn)
			if err != nil {
				return err
			}
			return solve(opts, func() (*trace.Result, error) {
				return roots.Bisect(f, a, b, opts.engineOptions())
			})
		},
	}
	addCommonFlags(cmd, opts)
	cmd.Flags().Float64Var(&a, "a", 0, "lower interval bound")
	cmd.Flags().Float64Var(&b, "b", 0, "upper interval bound")

	return cmd
}

// NewFalsePositionCommand creates the false-position (Regula Falsi) command.
func NewFalsePositionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{RootOptions: rootOpts}
	var p0, p1 float64

	cmd := &cobra.Command{
		Use:   "falseposition",
		Short: "False-position method from two initial estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.Compile(opts.Fn)
			if err != nil {
				return err
			}
			return solve(opts, func() (*trace.Result, error) {
				return roots.FalsePosition(f, p0, p1, opts.engineOptions())
			})
		},
	}
	addCommonFlags(cmd, opts)
	cmd.Flags().Float64Var(&p0, "p0", 0, "first initial estimate")
	cmd.Flags().Float64Var(&p1, "p1", 0, "second initial estimate")

	return cmd
}

// NewSecantCommand creates the secant command.
func NewSecantCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{RootOptions: rootOpts}
	var p0, p1 float64

	cmd := &cobra.Command{
		Use:   "secant",
		Short: "Secant method from two initial estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.Compile(opts.Fn)
			if err != nil {
				return err
			}
			return solve(opts, func() (*trace.Result, error) {
				return roots.Secant(f, p0, p1, opts.engineOptions())
			})
		},
	}
	addCommonFlags(cmd, opts)
	cmd.Flags().Float64Var(&p0, "p0", 0, "first initial estimate")
	cmd.Flags().Float64Var(&p1, "p1", 0, "second initial estimate")

	return cmd
}

// NewNewtonCommand creates the Newton-Raphson command.
func NewNewtonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{RootOptions: rootOpts}
	var x0 float64

	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Newton-Raphson method from an initial guess (requires --dfn)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.Compile(opts.Fn)
			if err != nil {
				return err
			}
			df, err := expr.Compile(opts.Dfn)
			if err != nil {
				return err
			}
			return solve(opts, func() (*trace.Result, error) {
				return roots.Newton(f, df, x0, opts.engineOptions())
			})
		},
	}
	addCommonFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.Dfn, "dfn", "", "derivative f'(x)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial guess")
	_ = cmd.MarkFlagRequired("dfn")

	return cmd
}

// NewFixedPointCommand creates the fixed-point iteration command; --fn
// here is the iteration function g(x), not a function to zero.
func NewFixedPointCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{RootOptions: rootOpts}
	var p0 float64

	cmd := &cobra.Command{
		Use:   "fixedpoint",
		Short: "Fixed-point iteration p = g(p); --fn supplies g",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := expr.Compile(opts.Fn)
			if err != nil {
				return err
			}
			return solve(opts, func() (*trace.Result, error) {
				return roots.FixedPoint(g, p0, opts.engineOptions())
			})
		},
	}
	addCommonFlags(cmd, opts)
	cmd.Flags().Float64Var(&p0, "p0", 0, "initial point")

	return cmd
}

// solve runs one engine invocation, emits its trace and maps the outcome
// to an exit code.
func solve(opts *solveOptions, run func() (*trace.Result, error)) error {
	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	res, err := run()
	if err != nil {
		return err
	}

	logger.Info("run finished",
		zap.String("method", string(res.Method)),
		zap.String("run_id", res.RunID.String()),
		zap.String("status", res.Status.String()),
		zap.Float64("root", res.Root),
		zap.Int("records", len(res.Records)))

	if err := emit(opts.RootOptions, opts.Out, res); err != nil {
		return err
	}

	return outcomeError(res)
}

// emit renders the result to the chosen destination and format.
func emit(opts *RootOptions, out string, res *trace.Result) error {
	var w io.Writer = os.Stdout
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}

	var sink report.Sink
	if opts.Format == "csv" {
		sink = report.NewCSVSink(w)
	} else {
		sink = report.NewTableSink(w)
	}

	return sink.Emit(res)
}

// outcomeError maps non-converged outcomes to exit-coded errors.
func outcomeError(res *trace.Result) error {
	switch res.Status {
	case trace.StatusMaxIterations:
		return &ExitError{Code: ExitMaxIterations, Msg: fmt.Sprintf("maximum iterations reached; best estimate %v", res.Root)}
	case trace.StatusFailed:
		return &ExitError{Code: ExitFailure, Msg: fmt.Sprintf("numerical failure: %s", res.Failure)}
	default:
		return nil
	}
}
