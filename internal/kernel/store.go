// Package kernel manages the kernels installed on this machine and applies
// them to projects.
//
// A kernel is a directory under the store root named after its version. Its
// "common" subdirectory is applied to every project; every other subdirectory
// is a build environment that can be applied on request.
package kernel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

const (
	// CommonDir holds kernel files applied regardless of environment.
	CommonDir = "common"
	// LatestIdentifier selects the newest installed kernel.
	LatestIdentifier = "latest"
	// DefaultDiffMaxLines is the default maximum number of diff lines per planned file.
	DefaultDiffMaxLines = 40
)

// ErrNotInstalled reports a kernel name with no directory in the store.
var ErrNotInstalled = errors.New("kernel not installed")

// Options configures a Store.
type Options struct {
	// Out receives the upgrade summary. Defaults to io.Discard.
	Out io.Writer
	// DiffMaxLines caps each diff in a Plan. Zero means DefaultDiffMaxLines.
	DiffMaxLines int
}

// Store reads kernels installed under a single directory.
type Store struct {
	fs           afero.Fs
	root         string
	out          io.Writer
	diffMaxLines int
}

// NewStore returns a Store for the kernels directory root on fsys.
func NewStore(fsys afero.Fs, root string, opts Options) (*Store, error) {
	if fsys == nil {
		return nil, fmt.Errorf(messages.KernelFSRequired)
	}
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf(messages.KernelRootRequired)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	maxLines := opts.DiffMaxLines
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	return &Store{
		fs:           fsys,
		root:         filepath.Clean(root),
		out:          out,
		diffMaxLines: maxLines,
	}, nil
}

// Root returns the kernels directory.
func (s *Store) Root() string {
	return s.root
}

// List returns the installed kernel names in version order.
// A missing kernels directory means nothing is installed.
func (s *Store) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf(messages.KernelListFailedFmt, s.root, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	SortNames(names)
	return names, nil
}

// ResolveKernelCandidates returns the installed kernels matched by identifier.
//
// A name that is installed verbatim matches only itself, even "latest".
// Otherwise "latest" (or an empty identifier) matches only the newest kernel,
// and anything else matches every kernel whose name starts with the
// identifier, ignoring a leading "v".
func (s *Store) ResolveKernelCandidates(identifier string) ([]string, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(identifier)
	if id != "" {
		for _, name := range names {
			if name == id {
				return []string{name}, nil
			}
		}
	}
	if id == "" || strings.EqualFold(id, LatestIdentifier) {
		if latest, ok := Latest(names); ok {
			return []string{latest}, nil
		}
		return []string{}, nil
	}
	prefix := trimVersionPrefix(id)
	matches := make([]string, 0)
	for _, name := range names {
		if strings.HasPrefix(trimVersionPrefix(name), prefix) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// FindKernelDirectory returns the installed location of a kernel.
func (s *Store) FindKernelDirectory(name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf(messages.KernelInvalidNameFmt+": "+messages.KernelIdentifierSeparatorHint, name)
	}
	dir := filepath.Join(s.root, name)
	info, err := s.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: "+messages.KernelNotInstalledFmt, ErrNotInstalled, name, s.root)
		}
		return "", fmt.Errorf(messages.KernelStatFailedFmt, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: "+messages.KernelNotInstalledFmt, ErrNotInstalled, name, s.root)
	}
	return dir, nil
}

// ListEnvironments returns the sorted environment names a kernel supports.
func (s *Store) ListEnvironments(kernelDir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, kernelDir)
	if err != nil {
		return nil, fmt.Errorf(messages.KernelListEnvironmentsFmt, kernelDir, err)
	}
	envs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == CommonDir || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		envs = append(envs, entry.Name())
	}
	sort.Strings(envs)
	return envs, nil
}

// validName reports whether name can be used as a single path element.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

func trimVersionPrefix(name string) string {
	if len(name) > 1 && (name[0] == 'v' || name[0] == 'V') && name[1] >= '0' && name[1] <= '9' {
		return name[1:]
	}
	return name
}
