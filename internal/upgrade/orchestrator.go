// Package upgrade resolves and validates a kernel upgrade request before
// handing it to the kernel store.
//
// Run walks a fixed sequence: resolve the project path, resolve the kernel
// identifier (prompting when it is ambiguous), check the project location,
// check the requested environments, then delegate. Each step returns an
// *Error tagged with the kind of failure; nothing here exits the process.
package upgrade

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/config"
	"github.com/purduesigbots/purdueros-cli/internal/kernel"
	"github.com/purduesigbots/purdueros-cli/internal/logging"
	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// Actions looks up installed kernels and performs project upgrades.
// kernel.Store is the production implementation.
type Actions interface {
	ResolveKernelCandidates(identifier string) ([]string, error)
	FindKernelDirectory(name string) (string, error)
	ListEnvironments(kernelDir string) ([]string, error)
	UpgradeProject(name string, projectDir string, environments []string) error
	PlanUpgrade(name string, projectDir string, environments []string) (kernel.Plan, error)
}

// ProjectPath is a project location as typed by the user and as resolved.
type ProjectPath struct {
	Raw  string
	Path string
}

// UpgradeRequest is the validated input handed to Actions.UpgradeProject.
type UpgradeRequest struct {
	Kernel       string
	Path         ProjectPath
	Environments []string
}

// Args are the user-supplied inputs to Run.
type Args struct {
	Directory    string
	Kernel       string
	Environments []string
	DryRun       bool
}

// Result describes a successful Run. Plan is set only for dry runs.
type Result struct {
	Request UpgradeRequest
	Plan    *kernel.Plan
}

// Options configures an Orchestrator.
type Options struct {
	Actions  Actions
	Prompter Prompter
	// Fs is used for the project location check and project file. Defaults to the OS filesystem.
	Fs afero.Fs
	// Home replaces a leading "~/" in the project directory.
	Home   string
	Logger *slog.Logger
	// DefaultEnvironments applies when neither Args nor the project file name any.
	DefaultEnvironments []string
}

// Orchestrator runs the upgrade pipeline.
type Orchestrator struct {
	actions             Actions
	prompter            Prompter
	fs                  afero.Fs
	home                string
	logger              *slog.Logger
	defaultEnvironments []string
	abs                 func(string) (string, error)
}

// New returns an Orchestrator for opts.
func New(opts Options) (*Orchestrator, error) {
	if opts.Actions == nil {
		return nil, fmt.Errorf(messages.UpgradeActionsRequired)
	}
	if opts.Prompter == nil {
		return nil, fmt.Errorf(messages.UpgradePrompterRequired)
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Orchestrator{
		actions:             opts.Actions,
		prompter:            opts.Prompter,
		fs:                  fsys,
		home:                opts.Home,
		logger:              logger,
		defaultEnvironments: slices.Clone(opts.DefaultEnvironments),
		abs:                 filepath.Abs,
	}, nil
}

// ResolvePath expands a leading "~/" or "~\" in raw to home. Other input is
// kept as given. Resolution is lexical; nothing is checked on disk. Empty
// input means the current directory.
func ResolvePath(raw string, home string) ProjectPath {
	path := raw
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	return ProjectPath{Raw: raw, Path: config.ExpandHome(path, home)}
}

// ResolveKernel turns identifier into exactly one installed kernel name,
// asking the prompter once when several kernels match.
func (o *Orchestrator) ResolveKernel(identifier string) (string, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		id = kernel.LatestIdentifier
	}
	found, err := o.actions.ResolveKernelCandidates(id)
	if err != nil {
		e := ioError(messages.UpgradeResolveCandidatesOp, err)
		e.Identifier = id
		return "", e
	}
	candidates := distinct(found)
	kernel.SortNames(candidates)
	o.logger.Debug("matched kernels", "identifier", id, "candidates", candidates)

	switch len(candidates) {
	case 0:
		return "", &Error{Kind: KindNoKernelMatch, Identifier: id}
	case 1:
		return candidates[0], nil
	}
	choice, err := o.prompter.ChooseKernel(slices.Clone(candidates))
	if err != nil {
		e := ioError(messages.UpgradeChooseKernelOp, err)
		e.Identifier = id
		return "", e
	}
	if !slices.Contains(candidates, choice) {
		return "", &Error{Kind: KindInvalidSelection, Identifier: id, Selection: choice, Candidates: candidates}
	}
	return choice, nil
}

// ValidateProjectLocation fails with KindInvalidTarget when path exists and
// is not a directory. Missing paths and directories pass.
func (o *Orchestrator) ValidateProjectLocation(path ProjectPath) error {
	info, err := o.fs.Stat(path.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		e := ioError(messages.UpgradeStatProjectOp, err)
		e.Path = path.Path
		return e
	}
	if !info.IsDir() {
		return &Error{Kind: KindInvalidTarget, Path: path.Path}
	}
	return nil
}

// ValidateEnvironments fails with KindEnvironmentMismatch unless every
// requested environment is supported. Both sets are reported on failure.
func ValidateEnvironments(requested []string, supported []string) error {
	for _, env := range requested {
		if !slices.Contains(supported, env) {
			return &Error{
				Kind:      KindEnvironmentMismatch,
				Supported: slices.Clone(supported),
				Requested: slices.Clone(requested),
			}
		}
	}
	return nil
}

// Run resolves and validates args, then upgrades the project, or plans the
// upgrade when args.DryRun is set.
func (o *Orchestrator) Run(args Args) (Result, error) {
	path := ResolvePath(args.Directory, o.home)
	abs, err := o.abs(path.Path)
	if err != nil {
		e := ioError(messages.UpgradeResolveAbsolutePathOp, err)
		e.Path = path.Path
		return Result{}, e
	}
	path.Path = abs
	o.logger.Debug("resolved project path", "input", path.Raw, "path", path.Path)

	name, err := o.ResolveKernel(args.Kernel)
	if err != nil {
		return Result{}, err
	}
	o.logger.Debug("resolved kernel", "kernel", name)

	if err := o.ValidateProjectLocation(path); err != nil {
		return Result{}, err
	}

	environments, err := o.requestedEnvironments(args.Environments, path, name)
	if err != nil {
		return Result{}, err
	}
	supported, err := o.supportedEnvironments(name, path)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateEnvironments(environments, supported); err != nil {
		return Result{}, err
	}

	req := UpgradeRequest{Kernel: name, Path: path, Environments: environments}
	if args.DryRun {
		plan, err := o.actions.PlanUpgrade(req.Kernel, req.Path.Path, slices.Clone(req.Environments))
		if err != nil {
			return Result{}, o.actionError(messages.UpgradePlanOp, req, err)
		}
		return Result{Request: req, Plan: &plan}, nil
	}
	o.logger.Debug("upgrading project", "kernel", req.Kernel, "path", req.Path.Path, "environments", req.Environments)
	if err := o.actions.UpgradeProject(req.Kernel, req.Path.Path, slices.Clone(req.Environments)); err != nil {
		return Result{}, o.actionError(messages.UpgradeProjectOp, req, err)
	}
	return Result{Request: req}, nil
}

// requestedEnvironments picks the environment set: explicit arguments, then
// the project's recorded environments, then the configured defaults.
func (o *Orchestrator) requestedEnvironments(explicit []string, path ProjectPath, name string) ([]string, error) {
	if envs := nonEmpty(explicit); len(envs) > 0 {
		return envs, nil
	}
	project, found, err := kernel.ReadProject(o.fs, path.Path)
	if err != nil {
		e := ioError(messages.UpgradeReadProjectOp, err)
		e.Kernel = name
		e.Path = path.Path
		return nil, e
	}
	if found && len(project.Environments) > 0 {
		o.logger.Debug("using project environments", "current_kernel", project.Kernel, "environments", project.Environments)
		return slices.Clone(project.Environments), nil
	}
	o.logger.Debug("using default environments", "environments", o.defaultEnvironments)
	return slices.Clone(o.defaultEnvironments), nil
}

func (o *Orchestrator) supportedEnvironments(name string, path ProjectPath) ([]string, error) {
	dir, err := o.actions.FindKernelDirectory(name)
	if err != nil {
		e := ioError(messages.UpgradeFindKernelDirOp, err)
		e.Kernel = name
		e.Path = path.Path
		return nil, e
	}
	supported, err := o.actions.ListEnvironments(dir)
	if err != nil {
		e := ioError(messages.UpgradeListEnvironmentsOp, err)
		e.Kernel = name
		e.Path = path.Path
		return nil, e
	}
	return supported, nil
}

func (o *Orchestrator) actionError(op string, req UpgradeRequest, err error) error {
	e := ioError(op, err)
	e.Kernel = req.Kernel
	e.Path = req.Path.Path
	e.Requested = slices.Clone(req.Environments)
	return e
}

func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
