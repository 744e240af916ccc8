package upgrade

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "no match",
			err:  &Error{Kind: KindNoKernelMatch, Identifier: "3.0"},
			want: `no kernels were matched by "3.0"; if the kernel exists on the update site, try 'pros fetch 3.0' to pull it from the update site`,
		},
		{
			name: "invalid selection",
			err:  &Error{Kind: KindInvalidSelection, Selection: "9", Candidates: []string{"2.1.5", "2.10.1"}},
			want: `kernel "9" was not a valid option (expected one of 2.1.5, 2.10.1)`,
		},
		{
			name: "invalid target",
			err:  &Error{Kind: KindInvalidTarget, Path: "/work/notes.txt"},
			want: "project /work/notes.txt is a file; cannot upgrade a file",
		},
		{
			name: "environment mismatch",
			err:  &Error{Kind: KindEnvironmentMismatch, Supported: []string{"A"}, Requested: []string{"B"}},
			want: "environments list does not match\navailable values: [A]\nreceived values: [B]",
		},
		{
			name: "io",
			err:  &Error{Kind: KindIO, Op: "upgrade project", Err: errors.New("disk full")},
			want: "upgrade project: disk full",
		},
		{
			name: "unknown kind with cause",
			err:  &Error{Kind: ErrorKind(42), Err: errors.New("boom")},
			want: "boom",
		},
		{
			name: "unknown kind",
			err:  &Error{},
			want: "upgrade failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKindClassification(t *testing.T) {
	for _, kind := range []ErrorKind{KindNoKernelMatch, KindInvalidSelection, KindInvalidTarget, KindEnvironmentMismatch} {
		if !kind.IsInput() {
			t.Errorf("%s should be an input failure", kind)
		}
	}
	if KindIO.IsInput() {
		t.Fatal("io should not be an input failure")
	}
	if ErrorKind(0).IsInput() {
		t.Fatal("zero kind should not be an input failure")
	}
	assert.Equal(t, "environment-mismatch", KindEnvironmentMismatch.String())
	assert.Equal(t, "unknown(99)", ErrorKind(99).String())
}

func TestKindOfUnwrapsChain(t *testing.T) {
	cause := errors.New("permission denied")
	wrapped := fmt.Errorf("outer: %w", ioError("check project location", cause))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindIO, kind)
	assert.True(t, errors.Is(wrapped, cause))

	_, ok = KindOf(cause)
	assert.False(t, ok)
}
