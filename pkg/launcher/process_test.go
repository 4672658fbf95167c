package launcher

import (
	"context"
	"runtime"
	"testing"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on /bin/sh")
	}

	runner := NewExecRunner()
	started, ended, err := runner.Run(context.Background(), "/bin/sh", t.TempDir(), []string{"-c", "exit 0"})

	require.NoError(t, err)
	assert.False(t, started.IsZero())
	assert.False(t, ended.Before(started))
}

func TestExecRunnerNonZeroExitIsNotAFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on /bin/sh")
	}

	runner := NewExecRunner()
	_, _, err := runner.Run(context.Background(), "/bin/sh", t.TempDir(), []string{"-c", "exit 3"})
	assert.NoError(t, err)
}

func TestExecRunnerStartFailure(t *testing.T) {
	runner := NewExecRunner()
	_, _, err := runner.Run(context.Background(), "/does/not/exist", "", nil)
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProcessFailure))
}
