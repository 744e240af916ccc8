package kernel

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// UpgradeProject applies a kernel to projectDir: the kernel's common files,
// then each environment in order, then the project file. Kernel files
// overwrite their project copies; other project files are left alone. The
// project directory is created when missing.
//
// Writes are not atomic. When a write fails, files already written stay in
// the project and the project file, written in path order, may still name
// the previous kernel.
func (s *Store) UpgradeProject(name string, projectDir string, environments []string) error {
	plan, err := s.plan(name, projectDir, environments, false)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf(messages.KernelCreateDirFailedFmt, projectDir, err)
	}
	written := 0
	for _, change := range plan.Changes {
		if change.Action == ActionUnchanged {
			continue
		}
		dest := filepath.Join(projectDir, filepath.FromSlash(change.Path))
		if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf(messages.KernelCreateDirFailedFmt, filepath.Dir(dest), err)
		}
		if err := afero.WriteFile(s.fs, dest, change.data, change.mode); err != nil {
			return fmt.Errorf(messages.KernelWriteFailedFmt, dest, err)
		}
		written++
	}
	_, _ = fmt.Fprintf(s.out, messages.KernelUpgradedFmt, projectDir, name, written, len(plan.Changes)-written)
	return nil
}
