package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_BisectToCSVFile drives the full command path: flags,
// expression compilation, engine run, CSV emission to a file.
func TestRootCommand_BisectToCSVFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.csv")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{
		"bisect",
		"--fn", "x - 1",
		"--a", "0", "--b", "2",
		"--tol", "1e-3",
		"--format", "csv",
		"--out", out,
	})
	require.NoError(t, cmd.Execute(), "a converged run exits clean")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "n,a_n,b_n,p_n,f(p_n),error\n0,0,2,1,0,1\n", string(data))
}

// TestRootCommand_NonConvergedExitCode verifies an exhausted run surfaces
// the max-iterations exit code.
func TestRootCommand_NonConvergedExitCode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.csv")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{
		"secant",
		"--fn", "x**2 + 1", // no real root
		"--p0", "0", "--p1", "2",
		"--max-iter", "5",
		"--format", "csv",
		"--out", out,
	})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitMaxIterations, ExitCode(err))
}

// TestRootCommand_RejectsBadFormat verifies the persistent flag guard.
func TestRootCommand_RejectsBadFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"bisect", "--fn", "x", "--a", "-1", "--b", "1", "--format", "xml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// TestRunCommand_Batch executes a problem file end to end.
func TestRunCommand_Batch(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "halving.csv")
	path := filepath.Join(dir, "problems.yaml")
	body := `
problems:
  - name: halving
    method: fixedpoint
    fn: "x / 2"
    seeds: [1]
    tolerance: 0.1
    out: ` + out + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"run", path, "--format", "csv"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "4,0.06,0.06")
}
