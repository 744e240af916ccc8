package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	paths := DefaultPaths(home)

	if paths.Home != home {
		t.Fatalf("expected home %s, got %s", home, paths.Home)
	}
	if paths.DataDir != filepath.Join(home, ".pros") {
		t.Fatalf("unexpected data dir: %s", paths.DataDir)
	}
	if paths.ConfigPath != filepath.Join(home, ".pros", "config.toml") {
		t.Fatalf("unexpected config path: %s", paths.ConfigPath)
	}
	if paths.KernelsDir != filepath.Join(home, ".pros", "kernels") {
		t.Fatalf("unexpected kernels dir: %s", paths.KernelsDir)
	}
}

func TestResolvePaths(t *testing.T) {
	home := filepath.FromSlash("/home/u")
	tests := []struct {
		name      string
		env       map[string]string
		wantData  string
		wantError bool
	}{
		{name: "no override", env: nil, wantData: filepath.Join(home, ".pros")},
		{name: "blank override", env: map[string]string{EnvHome: "  "}, wantData: filepath.Join(home, ".pros")},
		{name: "absolute override", env: map[string]string{EnvHome: filepath.FromSlash("/opt/pros")}, wantData: filepath.FromSlash("/opt/pros")},
		{name: "home override", env: map[string]string{EnvHome: "~/pros-data"}, wantData: filepath.Join(home, "pros-data")},
		{name: "relative override", env: map[string]string{EnvHome: "pros-data"}, wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				value, ok := tt.env[key]
				return value, ok
			}
			paths, err := ResolvePaths(home, lookup)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got paths %+v", paths)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePaths: %v", err)
			}
			if paths.DataDir != tt.wantData {
				t.Fatalf("data dir = %s, want %s", paths.DataDir, tt.wantData)
			}
			if paths.KernelsDir != filepath.Join(tt.wantData, "kernels") {
				t.Fatalf("kernels dir = %s", paths.KernelsDir)
			}
		})
	}
}

func TestResolvePathsNilLookup(t *testing.T) {
	paths, err := ResolvePaths("/home/u", nil)
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if paths != DefaultPaths("/home/u") {
		t.Fatalf("expected default paths, got %+v", paths)
	}
}

func TestExpandHome(t *testing.T) {
	home := filepath.FromSlash("/home/u")
	tests := []struct {
		raw  string
		want string
	}{
		{"~/foo", filepath.Join(home, "foo")},
		{"~/", home},
		{"~/a/../b", filepath.Join(home, "b")},
		{"/abs/foo", "/abs/foo"},
		{"relative/foo", "relative/foo"},
		{"~", "~"},
		{"~user/foo", "~user/foo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.raw, home); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
