package kernel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// ProjectFile records which kernel and environments a project was upgraded to.
const ProjectFile = "project.pros"

// Project is the content of a project's ProjectFile.
type Project struct {
	Kernel       string   `toml:"kernel"`
	Environments []string `toml:"environments"`
}

// ReadProject loads the project file in dir. found is false when the file does not exist.
func ReadProject(fsys afero.Fs, dir string) (Project, bool, error) {
	path := filepath.Join(dir, ProjectFile)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Project{}, false, nil
		}
		return Project{}, false, fmt.Errorf(messages.KernelReadProjectFailedFmt, path, err)
	}
	var project Project
	if err := toml.Unmarshal(data, &project); err != nil {
		return Project{}, false, fmt.Errorf(messages.KernelInvalidProjectFileFmt, path, err)
	}
	return project, true, nil
}

// encodeProject renders a project file.
func encodeProject(project Project) ([]byte, error) {
	if project.Environments == nil {
		project.Environments = []string{}
	}
	data, err := toml.Marshal(project)
	if err != nil {
		return nil, fmt.Errorf(messages.KernelEncodeProjectFailedFmt, err)
	}
	return data, nil
}
