package upgrade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// ErrorKind tags the step at which an upgrade stopped.
type ErrorKind int

// Error kinds. Every kind except KindIO is an input-shape failure: the user
// asked for something that cannot be done, and retrying will not help.
const (
	KindNoKernelMatch ErrorKind = iota + 1
	KindInvalidSelection
	KindInvalidTarget
	KindEnvironmentMismatch
	KindIO
)

var kindNames = map[ErrorKind]string{
	KindNoKernelMatch:       "no-kernel-match",
	KindInvalidSelection:    "invalid-selection",
	KindInvalidTarget:       "invalid-target",
	KindEnvironmentMismatch: "environment-mismatch",
	KindIO:                  "io",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// IsInput reports whether k is a user-facing input-shape failure.
func (k ErrorKind) IsInput() bool {
	_, known := kindNames[k]
	return known && k != KindIO
}

// Error is the tagged failure returned by each orchestration step.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind ErrorKind
	// Op names the failed operation for KindIO.
	Op         string
	Identifier string
	Kernel     string
	Path       string
	Candidates []string
	Selection  string
	Supported  []string
	Requested  []string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoKernelMatch:
		return fmt.Sprintf(messages.UpgradeNoKernelMatchFmt, e.Identifier, e.Identifier)
	case KindInvalidSelection:
		return fmt.Sprintf(messages.UpgradeInvalidSelectionFmt, e.Selection, strings.Join(e.Candidates, messages.PromptOptionSeparator))
	case KindInvalidTarget:
		return fmt.Sprintf(messages.UpgradeInvalidTargetFmt, e.Path)
	case KindEnvironmentMismatch:
		return strings.Join([]string{
			messages.UpgradeEnvironmentMismatch,
			fmt.Sprintf(messages.UpgradeAvailableValuesFmt, formatSet(e.Supported)),
			fmt.Sprintf(messages.UpgradeReceivedValuesFmt, formatSet(e.Requested)),
		}, "\n")
	case KindIO:
		return fmt.Sprintf(messages.UpgradeIOFailedFmt, e.Op, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return messages.UpgradeUnknownErrorKind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var upgradeErr *Error
	if !errors.As(err, &upgradeErr) {
		return 0, false
	}
	return upgradeErr.Kind, true
}

func ioError(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// formatSet renders values as "[a, b, c]".
func formatSet(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}
