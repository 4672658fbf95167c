package launcher

import (
	"context"
	"fmt"
	"time"

	"github.com/SierraSoftworks/bislib/pkg/launchargs"
	"github.com/SierraSoftworks/bislib/pkg/logging"
	"github.com/SierraSoftworks/bislib/pkg/selection"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/rs/zerolog"
)

// Launcher sequences capability validation, installation checks, mod
// selection, argument assembly and process execution for one launch attempt.
// Launchers hold no per-launch state; a single Launcher may serve any number
// of concurrent launches.
type Launcher struct {
	engine *selection.Engine
	runner ProcessRunner
	logger zerolog.Logger
}

// Options contains configuration for the launcher
type Options struct {
	// FS overrides the filesystem implementation, for testing
	FS types.FS

	// Runner overrides the process runner; defaults to the os/exec runner
	Runner ProcessRunner
}

// New creates a new launcher
func New(opts Options) *Launcher {
	runner := opts.Runner
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Launcher{
		engine: selection.New(selection.Options{FS: opts.FS}),
		runner: runner,
		logger: logging.GetLogger("launcher"),
	}
}

// Launch runs the whole launch state machine on the calling goroutine and
// blocks until the external process exits. Every failure is reported as a
// terminal outcome, never retried.
func (l *Launcher) Launch(ctx context.Context, cfg types.LaunchConfiguration) types.LaunchOutcome {
	return l.launch(ctx, cfg)
}

func (l *Launcher) launch(ctx context.Context, cfg types.LaunchConfiguration) types.LaunchOutcome {
	// ValidateCapabilities: reject an incomplete descriptor before any I/O
	if cfg.Game == nil {
		return types.LaunchOutcome{
			Kind:    types.OutcomeMissingCapability,
			Message: "launch configuration has no game descriptor",
		}
	}
	if validator, ok := cfg.Game.(types.DescriptorValidator); ok {
		if err := validator.Validate(); err != nil {
			return types.LaunchOutcome{
				Kind:    types.OutcomeMissingCapability,
				Message: err.Error(),
			}
		}
	}

	requested := cfg.LaunchType
	if requested == "" {
		requested = types.LaunchTypeLatest
	}

	// CheckInstalled
	if !cfg.Game.IsInstalled(requested) {
		return types.LaunchOutcome{
			Kind:    types.OutcomeNotInstalled,
			Message: fmt.Sprintf("%s is not installed for launch type %s", cfg.Game.Title(), requested),
		}
	}

	// ResolveLaunchType: every descriptor call from here on uses the
	// resolved type
	resolved := cfg.Game.ResolveLaunchType(requested)
	l.logger.Debug().
		Str("game", cfg.Game.Title()).
		Str("requested", requested.String()).
		Str("resolved", resolved.String()).
		Msg("Launch type resolved")

	// RunSelection
	baseMods := cfg.Game.BaseMods(resolved)
	if cfg.PreFilter != nil {
		baseMods = cfg.PreFilter(baseMods)
	}

	outcome, err := l.engine.Select(cfg, resolved)
	if err != nil {
		return types.LaunchOutcome{
			Kind:    types.OutcomeSelectionFailure,
			Message: err.Error(),
		}
	}

	// EvaluateMissing
	if len(outcome.UnmatchedRules) > 0 {
		proceed := cfg.MissingRulesPolicy != nil && cfg.MissingRulesPolicy(outcome.UnmatchedRules)
		if !proceed {
			return types.LaunchOutcome{
				Kind:           types.OutcomeMissingMods,
				Message:        fmt.Sprintf("%d selection rule(s) matched no mod folder", len(outcome.UnmatchedRules)),
				Selected:       outcome.Selected,
				Excluded:       outcome.Excluded,
				UnmatchedRules: outcome.UnmatchedRules,
			}
		}
		l.logger.Warn().
			Int("unmatchedRules", len(outcome.UnmatchedRules)).
			Msg("Proceeding despite unmatched rules by caller policy")
	}

	// AssembleArguments
	modArgument := launchargs.ModArgument(baseMods, outcome.Selected, launchargs.Options{
		LaunchType:    resolved,
		ModListFilter: cfg.ModListFilter,
		PostFilter:    cfg.PostFilter,
	})
	args := launchargs.CommandLine(cfg.Game.BaseArguments(resolved), modArgument, cfg.ExtraArguments, cfg.Server)

	executable, err := cfg.Game.ExecutablePath(resolved)
	if err != nil {
		return types.LaunchOutcome{
			Kind:    types.OutcomeProcessFailure,
			Message: err.Error(),
		}
	}
	workingDir, err := cfg.Game.InstallDirectory(resolved)
	if err != nil {
		return types.LaunchOutcome{
			Kind:    types.OutcomeProcessFailure,
			Message: err.Error(),
		}
	}

	// Execute
	logging.LogLaunch(executable, args)
	defer logging.LogDuration(time.Now(), "launch")
	started, ended, err := l.runner.Run(ctx, executable, workingDir, args)
	if err != nil {
		return types.LaunchOutcome{
			Kind:    types.OutcomeProcessFailure,
			Message: err.Error(),
		}
	}

	return types.LaunchOutcome{
		Kind:      types.OutcomeSuccess,
		StartedAt: started,
		EndedAt:   ended,
		Selected:  outcome.Selected,
		Excluded:  outcome.Excluded,
	}
}
