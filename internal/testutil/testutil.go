package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Kernel describes a kernel tree written by WriteKernel.
// Files maps an environment (or "common") to slash-separated file paths and contents.
type Kernel struct {
	Name  string
	Files map[string]map[string]string
}

// WriteKernel writes a kernel tree under kernelsDir and returns the kernel directory.
// t is the active test; fsys is the target filesystem; kernelsDir is the store root.
func WriteKernel(t *testing.T, fsys afero.Fs, kernelsDir string, kernel Kernel) string {
	t.Helper()
	dir := filepath.Join(kernelsDir, kernel.Name)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir kernel: %v", err)
	}
	for env, files := range kernel.Files {
		envDir := filepath.Join(dir, env)
		if err := fsys.MkdirAll(envDir, 0o755); err != nil {
			t.Fatalf("mkdir environment %s: %v", env, err)
		}
		for rel, content := range files {
			WriteFile(t, fsys, filepath.Join(envDir, filepath.FromSlash(rel)), content)
		}
	}
	return dir
}

// WriteKernels writes one empty-environment kernel per name, each supporting envs.
// t is the active test; fsys is the target filesystem; kernelsDir is the store root.
func WriteKernels(t *testing.T, fsys afero.Fs, kernelsDir string, envs []string, names ...string) {
	t.Helper()
	for _, name := range names {
		files := make(map[string]map[string]string, len(envs))
		for _, env := range envs {
			files[env] = map[string]string{"include/" + env + ".h": "// " + name + " " + env + "\n"}
		}
		WriteKernel(t, fsys, kernelsDir, Kernel{Name: name, Files: files})
	}
}

// WriteFile writes content to path on fsys, creating parent directories.
// t is the active test; fsys is the target filesystem.
func WriteFile(t *testing.T, fsys afero.Fs, path string, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path on fsys, failing the test when it cannot be read.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
