package kernel

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// Action describes what an upgrade does to a single project file.
type Action string

// Plan actions.
const (
	ActionAdd       Action = messages.KernelPlanActionAdd
	ActionUpdate    Action = messages.KernelPlanActionUpdate
	ActionUnchanged Action = messages.KernelPlanActionUnchanged
)

// Change is one project file touched by an upgrade.
type Change struct {
	// Path is slash-separated and relative to the project directory.
	Path string
	// Environment is the kernel subdirectory the file comes from, "common",
	// or "project" for the project file itself.
	Environment string
	Action      Action
	UnifiedDiff string
	Truncated   bool

	mode os.FileMode
	data []byte
}

// Plan lists every file an upgrade would write, sorted by path.
type Plan struct {
	Kernel       string
	Project      string
	Environments []string
	Changes      []Change
}

// Pending returns the number of changes that would write a file.
func (p Plan) Pending() int {
	n := 0
	for _, change := range p.Changes {
		if change.Action != ActionUnchanged {
			n++
		}
	}
	return n
}

// PlanUpgrade computes the changes UpgradeProject would make without writing anything.
func (s *Store) PlanUpgrade(name string, projectDir string, environments []string) (Plan, error) {
	return s.plan(name, projectDir, environments, true)
}

func (s *Store) plan(name string, projectDir string, environments []string, withDiffs bool) (Plan, error) {
	if strings.TrimSpace(projectDir) == "" {
		return Plan{}, fmt.Errorf(messages.KernelProjectPathRequired)
	}
	kernelDir, err := s.FindKernelDirectory(name)
	if err != nil {
		return Plan{}, err
	}

	sources := make(map[string]Change)
	if err := s.collect(sources, kernelDir, CommonDir, true); err != nil {
		return Plan{}, err
	}
	for _, env := range environments {
		if !validName(env) || env == CommonDir {
			return Plan{}, fmt.Errorf(messages.KernelInvalidEnvironmentFmt, env)
		}
		if err := s.collect(sources, kernelDir, env, false); err != nil {
			return Plan{}, err
		}
	}
	record, err := encodeProject(Project{Kernel: name, Environments: environments})
	if err != nil {
		return Plan{}, err
	}
	sources[ProjectFile] = Change{
		Path:        ProjectFile,
		Environment: messages.KernelPlanProjectEnvironment,
		mode:        0o644,
		data:        record,
	}

	plan := Plan{
		Kernel:       name,
		Project:      projectDir,
		Environments: append([]string(nil), environments...),
		Changes:      make([]Change, 0, len(sources)),
	}
	for _, change := range sources {
		if err := s.classify(&change, name, projectDir, withDiffs); err != nil {
			return Plan{}, err
		}
		plan.Changes = append(plan.Changes, change)
	}
	sort.Slice(plan.Changes, func(i, j int) bool {
		return plan.Changes[i].Path < plan.Changes[j].Path
	})
	return plan, nil
}

// collect adds every file under kernelDir/env to sources. Later environments
// replace files of the same path from earlier ones.
func (s *Store) collect(sources map[string]Change, kernelDir string, env string, optional bool) error {
	root := filepath.Join(kernelDir, env)
	info, err := s.fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if optional {
				return nil
			}
			return fmt.Errorf(messages.KernelEnvironmentMissingFmt, filepath.Base(kernelDir), env)
		}
		return fmt.Errorf(messages.KernelStatFailedFmt, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.KernelSourceNotDirFmt, root)
	}
	return afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf(messages.KernelWalkFailedFmt, path, err)
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf(messages.KernelWalkFailedFmt, path, err)
		}
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return fmt.Errorf(messages.KernelReadFailedFmt, path, err)
		}
		mode := info.Mode().Perm()
		if mode == 0 {
			mode = 0o644
		}
		key := filepath.ToSlash(rel)
		sources[key] = Change{
			Path:        key,
			Environment: env,
			mode:        mode,
			data:        data,
		}
		return nil
	})
}

// classify compares a planned file with the project's current copy.
func (s *Store) classify(change *Change, name string, projectDir string, withDiffs bool) error {
	dest := filepath.Join(projectDir, filepath.FromSlash(change.Path))
	current, err := afero.ReadFile(s.fs, dest)
	switch {
	case err == nil:
		if bytes.Equal(current, change.data) {
			change.Action = ActionUnchanged
			return nil
		}
		change.Action = ActionUpdate
	case errors.Is(err, os.ErrNotExist):
		current = nil
		change.Action = ActionAdd
	default:
		return fmt.Errorf(messages.KernelReadFailedFmt, dest, err)
	}
	if withDiffs {
		change.UnifiedDiff, change.Truncated = s.renderDiff(change.Path, name, current, change.data)
	}
	return nil
}

func (s *Store) renderDiff(path string, name string, from []byte, to []byte) (string, bool) {
	if isBinary(from) || isBinary(to) {
		return messages.KernelDiffBinary, false
	}
	diff := udiff.Unified(
		path+messages.KernelDiffCurrentSuffix,
		path+fmt.Sprintf(messages.KernelDiffTargetSuffixFmt, name),
		string(from),
		string(to),
	)
	return truncateDiff(diff, s.diffMaxLines)
}

func truncateDiff(diff string, limit int) (string, bool) {
	trimmed := strings.TrimRight(diff, "\n")
	if trimmed == "" {
		return "", false
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) <= limit {
		return trimmed + "\n", false
	}
	lines = append(lines[:limit], fmt.Sprintf(messages.KernelDiffTruncatedFmt, limit, messages.KernelPlanDiffLinesFlag))
	return strings.Join(lines, "\n") + "\n", true
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}
