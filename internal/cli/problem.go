package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cunkin375/rootfind/expr"
	"github.com/cunkin375/rootfind/roots"
	"github.com/cunkin375/rootfind/trace"
)

// Problem is one entry of a YAML problem file.
//
// seeds carries the method's numeric inputs in order: [a, b] for
// bisection, [p0, p1] for false position and secant, [x0] for Newton,
// [p0] for fixed point.
type Problem struct {
	Name          string    `yaml:"name"`
	Method        string    `yaml:"method"`
	Fn            string    `yaml:"fn"`
	Dfn           string    `yaml:"dfn,omitempty"`
	Seeds         []float64 `yaml:"seeds"`
	Tolerance     float64   `yaml:"tolerance,omitempty"`
	MaxIterations int       `yaml:"maxIterations,omitempty"`
	Out           string    `yaml:"out,omitempty"`
}

// ProblemFile is the top-level YAML document.
type ProblemFile struct {
	Problems []Problem `yaml:"problems"`
}

// LoadProblems reads and parses a YAML problem file.
func LoadProblems(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem file: %w", err)
	}
	var pf ProblemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse problem file: %w", err)
	}
	if len(pf.Problems) == 0 {
		return nil, fmt.Errorf("problem file %s defines no problems", path)
	}

	return pf.Problems, nil
}

// options maps a problem's tuning fields onto engine Options, falling
// back to the engine defaults for omitted values.
func (p Problem) options() roots.Options {
	opts := roots.DefaultOptions()
	if p.Tolerance > 0 {
		opts.Tolerance = p.Tolerance
	}
	if p.MaxIterations > 0 {
		opts.MaxIterations = p.MaxIterations
	}

	return opts
}

// seeds validates and unpacks the expected number of numeric inputs.
func (p Problem) seeds(n int) ([]float64, error) {
	if len(p.Seeds) != n {
		return nil, fmt.Errorf("problem %q: method %s needs %d seeds, got %d", p.Name, p.Method, n, len(p.Seeds))
	}

	return p.Seeds, nil
}

// Run compiles the problem's expressions and executes the named method.
func (p Problem) Run() (*trace.Result, error) {
	f, err := expr.Compile(p.Fn)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	opts := p.options()

	switch p.Method {
	case "bisection":
		s, err := p.seeds(2)
		if err != nil {
			return nil, err
		}
		return roots.Bisect(f, s[0], s[1], opts)
	case "falseposition", "false-position":
		s, err := p.seeds(2)
		if err != nil {
			return nil, err
		}
		return roots.FalsePosition(f, s[0], s[1], opts)
	case "secant":
		s, err := p.seeds(2)
		if err != nil {
			return nil, err
		}
		return roots.Secant(f, s[0], s[1], opts)
	case "newton":
		df, err := expr.Compile(p.Dfn)
		if err != nil {
			return nil, fmt.Errorf("problem %q: %w", p.Name, err)
		}
		s, err := p.seeds(1)
		if err != nil {
			return nil, err
		}
		return roots.Newton(f, df, s[0], opts)
	case "fixedpoint", "fixed-point":
		s, err := p.seeds(1)
		if err != nil {
			return nil, err
		}
		return roots.FixedPoint(f, s[0], opts)
	default:
		return nil, fmt.Errorf("problem %q: unknown method %q", p.Name, p.Method)
	}
}

// NewRunCommand creates the batch command executing a YAML problem file.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <problems.yaml>",
		Short: "Run every problem in a YAML file",
		Long: `Run executes each problem defined in a YAML file in order.

Example file:

  problems:
    - name: cubic-bisect
      method: bisection
      fn: "x**3 - 3*x**2 + 2*x - 0.1"
      seeds: [0, 2]
      tolerance: 1e-3
      out: bisection_results.csv
    - name: cos-fixed-point
      method: fixedpoint
      fn: "cos(x)"
      seeds: [0.5]
      tolerance: 1e-4`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProblems(rootOpts, args[0])
		},
	}

	return cmd
}

func runProblems(opts *RootOptions, path string) error {
	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	problems, err := LoadProblems(path)
	if err != nil {
		return err
	}
	logger.Info("problem file loaded", zap.String("path", path), zap.Int("problems", len(problems)))

	worst := ExitConverged
	for _, p := range problems {
		res, err := p.Run()
		if err != nil {
			return err
		}
		logger.Info("problem finished",
			zap.String("name", p.Name),
			zap.String("method", string(res.Method)),
			zap.String("run_id", res.RunID.String()),
			zap.String("status", res.Status.String()),
			zap.Float64("root", res.Root))

		if err := emit(opts, p.Out, res); err != nil {
			return err
		}
		if code := ExitCode(outcomeError(res)); code > worst {
			worst = code
		}
	}

	if worst != ExitConverged {
		return &ExitError{Code: worst, Msg: "one or more problems did not converge"}
	}

	return nil
}
