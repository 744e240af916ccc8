package main

// NOTE: Tests in this package mutate package-level globals (homeDir, lookupEnv,
// appFs, isTerminal, executeFunc). Do not use t.Parallel() at the top level.
// Each test must restore globals via t.Cleanup().

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/testutil"
)

// cliEnv is a throwaway home directory wired into the command seams.
type cliEnv struct {
	home    string
	kernels string
	fs      afero.Fs
}

func newCLIEnv(t *testing.T, interactive bool) *cliEnv {
	t.Helper()
	home := t.TempDir()

	origHome := homeDir
	origLookup := lookupEnv
	origFs := appFs
	origIsTerminal := isTerminal
	origNoColor := color.NoColor
	homeDir = func() (string, error) { return home, nil }
	lookupEnv = func(string) (string, bool) { return "", false }
	appFs = afero.NewOsFs()
	isTerminal = func(io.Reader) bool { return interactive }
	color.NoColor = true
	t.Cleanup(func() {
		homeDir = origHome
		lookupEnv = origLookup
		appFs = origFs
		isTerminal = origIsTerminal
		color.NoColor = origNoColor
	})

	return &cliEnv{
		home:    home,
		kernels: filepath.Join(home, ".pros", "kernels"),
		fs:      appFs,
	}
}

// writeStandardKernels installs 2.11.1 and 2.12.0, each with common files and
// the cortex and default environments.
func (e *cliEnv) writeStandardKernels(t *testing.T) {
	t.Helper()
	for _, name := range []string{"2.11.1", "2.12.0"} {
		testutil.WriteKernel(t, e.fs, e.kernels, testutil.Kernel{
			Name: name,
			Files: map[string]map[string]string{
				"common":  {"include/api.h": "// api " + name + "\n"},
				"cortex":  {"include/cortex.h": "// cortex " + name + "\n"},
				"default": {"include/default.h": "// default " + name + "\n", "src/main.c": "int main(void) { return 0; }\n"},
			},
		})
	}
}

// run executes the root command with stdin and returns stdout, stderr, and the error.
func (e *cliEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	newCLIEnv(t, false)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, want := range []string{"upgrade", "kernels", "--verbose"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRootVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.Version = "v1.2.3"
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetArgs([]string{"--version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "v1.2.3" {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestLoadEnvironmentRejectsInvalidConfig(t *testing.T) {
	env := newCLIEnv(t, false)
	testutil.WriteFile(t, env.fs, filepath.Join(env.home, ".pros", "config.toml"), "[upgrade]\nbogus = true\n")

	_, _, err := env.run(t, "", "kernels")
	if err == nil {
		t.Fatal("expected config error")
	}
	if !strings.Contains(err.Error(), "unrecognized config keys") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEnvironmentHomeOverride(t *testing.T) {
	env := newCLIEnv(t, false)
	dataDir := filepath.Join(env.home, "custom")
	lookupEnv = func(key string) (string, bool) {
		if key == "PROS_HOME" {
			return dataDir, true
		}
		return "", false
	}
	testutil.WriteKernels(t, env.fs, filepath.Join(dataDir, "kernels"), []string{"default"}, "3.0.0")

	out, _, err := env.run(t, "", "kernels")
	if err != nil {
		t.Fatalf("kernels: %v", err)
	}
	if !strings.Contains(out, "3.0.0") {
		t.Fatalf("expected kernel from override store, got %q", out)
	}
}

func TestLoadEnvironmentRelativeOverrideFails(t *testing.T) {
	env := newCLIEnv(t, false)
	lookupEnv = func(string) (string, bool) { return "relative/dir", true }

	_, _, err := env.run(t, "", "kernels")
	if err == nil || !strings.Contains(err.Error(), "must be an absolute path") {
		t.Fatalf("expected absolute path error, got %v", err)
	}
}

func TestLoadEnvironmentHomeError(t *testing.T) {
	env := newCLIEnv(t, false)
	homeDir = func() (string, error) { return "", io.ErrUnexpectedEOF }

	_, _, err := env.run(t, "", "upgrade")
	if err == nil || !strings.Contains(err.Error(), "resolve home directory") {
		t.Fatalf("expected home directory error, got %v", err)
	}
}
