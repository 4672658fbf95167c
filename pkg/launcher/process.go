package launcher

import (
	"context"
	"errors"
	"os/exec"
	"time"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/logging"
)

// ProcessRunner starts the external game process and blocks until it exits.
// The core treats it as a single blocking call; it reports the process
// lifetime or a start failure.
type ProcessRunner interface {
	Run(ctx context.Context, executable, workingDir string, args []string) (started, ended time.Time, err error)
}

// ExecRunner runs the game through os/exec
type ExecRunner struct{}

// NewExecRunner creates the default os/exec-backed process runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the executable and waits for it to exit. A process that starts
// and later exits non-zero is not a failure: the game ran. Only a failure
// to start is reported as an error.
func (r *ExecRunner) Run(ctx context.Context, executable, workingDir string, args []string) (time.Time, time.Time, error) {
	logger := logging.GetLogger("launcher.process")

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = workingDir

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return time.Time{}, time.Time{}, liberrors.Wrapf(err, liberrors.ErrProcessFailure,
			"failed to start %s", executable)
	}

	logger.Debug().Int("pid", cmd.Process.Pid).Msg("Process started")

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return started, time.Now(), liberrors.Wrapf(err, liberrors.ErrProcessFailure,
				"failed waiting for %s", executable)
		}
		logger.Warn().Int("exitCode", exitErr.ExitCode()).Msg("Process exited with non-zero status")
	}

	ended := time.Now()
	logger.Debug().Dur("lifetime", ended.Sub(started)).Msg("Process exited")
	return started, ended, nil
}
