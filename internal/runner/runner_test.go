package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeHost writes a shell script standing in for the instrumented
// binary: it emits a minimal valid report to $RNAVIEW_PROFILE_JSON.
func fakeHost(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake host binary is a shell script")
	}
	path := filepath.Join(t.TempDir(), "rnaview")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

const writeReport = `cat > "$RNAVIEW_PROFILE_JSON" <<'EOF'
{
  "schema_version": 1,
  "input": "$1",
  "num_residue": 5,
  "counts": {"cand_pairs": 3},
  "times_ns": {"total": 1000}
}
EOF
`

func TestRunCollectsReport(t *testing.T) {
	r := &Runner{Binary: fakeHost(t, writeReport)}

	res, err := r.Run(context.Background(), "1ehz.pdb")
	require.NoError(t, err)

	require.NotEmpty(t, res.ID)
	require.Equal(t, "1ehz.pdb", res.Input)
	require.Equal(t, int64(3), res.Report.Counts["cand_pairs"])
	require.Equal(t, int64(1000), res.Report.Total())
	require.Greater(t, res.WallTime, time.Duration(0))
}

func TestRunNonZeroExitIsAnError(t *testing.T) {
	r := &Runner{Binary: fakeHost(t, "echo boom >&2\nexit 3\n")}

	_, err := r.Run(context.Background(), "1ehz.pdb")
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestRunMissingReportIsAnError(t *testing.T) {
	r := &Runner{Binary: fakeHost(t, "exit 0\n")}

	_, err := r.Run(context.Background(), "1ehz.pdb")
	require.Error(t, err)
}

func TestRunTimeout(t *testing.T) {
	r := &Runner{
		Binary:  fakeHost(t, "sleep 5\n"),
		Timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := r.Run(context.Background(), "1ehz.pdb")
	require.Error(t, err)
	require.Less(t, time.Since(start), 3*time.Second)
}
