package selection

import (
	"path/filepath"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/filesystem"
	"github.com/SierraSoftworks/bislib/pkg/logging"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/rs/zerolog"
)

// Engine discovers candidate mod folders and applies an ordered list of
// selection rules to them
type Engine struct {
	fs     types.FS
	logger zerolog.Logger
}

// Options contains configuration for the selection engine
type Options struct {
	// FS overrides the filesystem implementation, for testing
	FS types.FS
}

// New creates a new selection engine
func New(opts Options) *Engine {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Engine{
		fs:     fs,
		logger: logging.GetLogger("selection"),
	}
}

// Select runs the configured rules against the mod folders discovered under
// the game's install directory and the extra search directories.
// launchType must already be resolved (never types.LaunchTypeLatest).
//
// An unreadable or missing search directory aborts the whole selection with
// a DIRECTORY_UNREADABLE error: the caller cannot tell "no mods" from
// "couldn't look", so a partial result would be misleading.
func (e *Engine) Select(cfg types.LaunchConfiguration, launchType types.LaunchType) (types.SelectionOutcome, error) {
	candidates, err := e.discover(cfg, launchType)
	if err != nil {
		return types.SelectionOutcome{}, err
	}

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("rules", len(cfg.Rules)).
		Msg("Running selection rules")

	var (
		selected    []string
		selectedSet = make(map[string]bool)
		excluded    []string
		excludedSet = make(map[string]bool)
		unmatched   []types.SelectionRule
	)

	for _, rule := range cfg.Rules {
		matched := rule.Matcher.Match(candidates)
		if cfg.RuleOverride != nil {
			matched = cfg.RuleOverride(rule, matched)
		}

		if len(matched) == 0 {
			e.logger.Debug().Stringer("rule", rule).Msg("Rule matched no folders")
			unmatched = append(unmatched, rule)
			continue
		}

		for _, name := range matched {
			// Core game folders can never be treated as mods, whatever
			// the rules say.
			if cfg.Game.IsReservedFolder(name) {
				e.logger.Debug().Str("folder", name).Msg("Skipping reserved folder")
				continue
			}

			if rule.Exclude {
				if !excludedSet[name] {
					excludedSet[name] = true
					excluded = append(excluded, name)
				}
			} else {
				if !selectedSet[name] {
					selectedSet[name] = true
					selected = append(selected, name)
				}
			}
		}
	}

	// Exclusion always wins, regardless of the order of the rules that
	// produced the two memberships.
	if len(excludedSet) > 0 {
		kept := selected[:0:0]
		for _, name := range selected {
			if !excludedSet[name] {
				kept = append(kept, name)
			}
		}
		selected = kept
	}

	e.logger.Info().
		Strs("selected", selected).
		Strs("excluded", excluded).
		Int("unmatchedRules", len(unmatched)).
		Msg("Selection complete")

	return types.SelectionOutcome{
		Selected:       selected,
		Excluded:       excluded,
		UnmatchedRules: unmatched,
	}, nil
}

// discover lists the immediate child directories of every search directory,
// install directory first, preserving search-directory-major order
func (e *Engine) discover(cfg types.LaunchConfiguration, launchType types.LaunchType) ([]string, error) {
	installDir, err := cfg.Game.InstallDirectory(launchType)
	if err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrDirectoryUnreadable,
			"cannot resolve install directory for %s", cfg.Game.Title())
	}

	searchDirs := append([]string{installDir}, cfg.ExtraSearchDirectories...)

	var candidates []string
	for _, dir := range searchDirs {
		entries, err := e.fs.ReadDir(dir)
		if err != nil {
			return nil, liberrors.Wrapf(err, liberrors.ErrDirectoryUnreadable,
				"cannot list search directory %s", dir).
				WithDetail("directory", filepath.Clean(dir))
		}

		for _, entry := range entries {
			if entry.IsDir() {
				candidates = append(candidates, entry.Name())
			}
		}
	}

	return candidates, nil
}
